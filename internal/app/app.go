//go:build ebiten

package app

import (
	"image/color"
	"time"

	"nfa-ca/internal/core"
	"nfa-ca/internal/render"
	"nfa-ca/internal/sims/nfaca"
	"nfa-ca/internal/stats"
	"nfa-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the pixel width of the knob/census panel.
const hudWidth = 190

type paletteProvider interface {
	Palette() []color.RGBA
}

type censusProvider interface {
	Counts() [nfaca.NumStates]int
}

// Game adapts a core simulation to the ebiten.Game interface, wiring the
// grid painter, the knob HUD and the census chart together.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	chart   *ui.Chart
	rec     *stats.Recorder

	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		rec:     stats.NewRecorder(),
		scale:   scale,
		seed:    seed,
	}
	g.hud = ui.NewHUD(sim, hudWidth)
	g.chart = ui.NewChart(g.rec)
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.rec.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.sim.Size().W * g.scale)
	g.chart.Update()

	if (!g.paused) || g.tickOnce {
		// Census rows describe the generation a step starts from, so
		// sample before stepping.
		if provider, ok := g.sim.(censusProvider); ok {
			g.rec.Record(stats.Census(provider.Counts()))
		}
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state, HUD and chart.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	g.chart.Draw(screen)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
