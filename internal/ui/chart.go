//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"nfa-ca/internal/sims/nfaca"
	"nfa-ca/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Chart draws the recorded per-state census as line series over the lower
// part of the view, one line per state in its render color. Toggled with C.
type Chart struct {
	rec     *stats.Recorder
	visible bool
	pixel   *ebiten.Image
}

// NewChart constructs a chart fed by the provided recorder.
func NewChart(rec *stats.Recorder) *Chart {
	c := &Chart{rec: rec}
	c.pixel = ebiten.NewImage(1, 1)
	c.pixel.Fill(color.White)
	return c
}

// Update handles the visibility toggle.
func (c *Chart) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		c.visible = !c.visible
	}
}

// Draw renders the chart across the bottom third of the screen.
func (c *Chart) Draw(screen *ebiten.Image) {
	if c == nil || !c.visible || c.rec == nil || c.rec.Len() < 2 {
		return
	}
	bounds := screen.Bounds()
	width := bounds.Dx()
	height := bounds.Dy() / 3
	if width <= 0 || height <= 0 {
		return
	}
	top := float64(bounds.Dy() - height)

	rows := c.rec.Tail(width)
	population := rows[len(rows)-1].Total()
	if population <= 0 {
		return
	}

	// Dim the plot area so the lines read against any grid colors.
	bg := &ebiten.DrawImageOptions{}
	bg.GeoM.Scale(float64(width), float64(height))
	bg.GeoM.Translate(0, top)
	bg.ColorM.Scale(0, 0, 0, 0.6)
	screen.DrawImage(c.pixel, bg)

	stepX := float64(width) / float64(len(rows)-1)
	for s := nfaca.State(0); s < nfaca.NumStates; s++ {
		col := s.Color()
		for i := 1; i < len(rows); i++ {
			y0 := top + float64(height)*(1-float64(rows[i-1][s])/float64(population))
			y1 := top + float64(height)*(1-float64(rows[i][s])/float64(population))
			c.drawLine(screen, float64(i-1)*stepX, y0, float64(i)*stepX, y1, col)
		}
	}
}

func (c *Chart) drawLine(screen *ebiten.Image, x1, y1, x2, y2 float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, 1)
	op.GeoM.Translate(0, -0.5)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, 1)
	screen.DrawImage(c.pixel, op)
}
