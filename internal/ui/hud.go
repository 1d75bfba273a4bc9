//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"nfa-ca/internal/core"
	"nfa-ca/internal/sims/nfaca"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type censusProvider interface {
	Counts() [nfaca.NumStates]int
}

// HUD renders the knob panel and per-state census to the right of the
// simulation view. Knobs come from the sim's ParameterControls and are
// adjusted through its setter interfaces, so changes land on the next step.
type HUD struct {
	sim   core.Sim
	width int

	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	controls    []hudControl
	floatSetter core.FloatParameterSetter
	intSetter   core.IntParameterSetter

	panelOffsetX int
}

type hudControl struct {
	control core.ParameterControl

	floatValue float64
	intValue   int

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 22
	controlsTop    = panelPadding + headerBaseline + 12
	legendGap      = 24
	legendLine     = 18
	swatchSize     = 10
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControl, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControl{control: ctrl}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Update refreshes control values from the sim and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawCensus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	values := map[string]string{}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			values[param.Key] = param.Value
		}
	}
	for i := range h.controls {
		ctrl := &h.controls[i]
		raw, ok := values[ctrl.control.Key]
		if !ok {
			continue
		}
		switch ctrl.control.Type {
		case core.ParamTypeInt:
			if parsed, err := strconv.Atoi(raw); err == nil {
				ctrl.intValue = parsed
				ctrl.floatValue = float64(parsed)
			}
		case core.ParamTypeFloat:
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
				ctrl.floatValue = parsed
			}
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		ctrl := &h.controls[i]
		if pointInRect(px, my, ctrl.minusRect) {
			h.adjust(ctrl, -1)
			return
		}
		if pointInRect(px, my, ctrl.plusRect) {
			h.adjust(ctrl, 1)
			return
		}
	}
}

func (h *HUD) adjust(ctrl *hudControl, direction int) {
	switch ctrl.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(math.Round(ctrl.control.Step))
		if step <= 0 {
			step = 1
		}
		target := ctrl.intValue + direction*step
		if ctrl.control.HasMin && target < int(math.Round(ctrl.control.Min)) {
			target = int(math.Round(ctrl.control.Min))
		}
		if ctrl.control.HasMax && target > int(math.Round(ctrl.control.Max)) {
			target = int(math.Round(ctrl.control.Max))
		}
		if target != ctrl.intValue && h.intSetter.SetIntParameter(ctrl.control.Key, target) {
			ctrl.intValue = target
			ctrl.floatValue = float64(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := ctrl.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := ctrl.floatValue + float64(direction)*step
		if ctrl.control.HasMin && target < ctrl.control.Min {
			target = ctrl.control.Min
		}
		if ctrl.control.HasMax && target > ctrl.control.Max {
			target = ctrl.control.Max
		}
		if math.Abs(target-ctrl.floatValue) > 1e-9 && h.floatSetter.SetFloatParameter(ctrl.control.Key, target) {
			ctrl.floatValue = target
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Knobs", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		ctrl := &h.controls[i]
		labelY := ctrl.top + labelBaseline
		text.Draw(h.panel, ctrl.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := h.formatValue(ctrl)
		bounds := text.BoundString(face, value)
		valueX := ctrl.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		h.drawButton(ctrl.minusRect, "-")
		h.drawButton(ctrl.plusRect, "+")
	}
}

func (h *HUD) drawCensus() {
	provider, ok := h.sim.(censusProvider)
	if !ok {
		return
	}
	face := basicfont.Face7x13
	top := controlsTop + len(h.controls)*lineHeight + legendGap
	text.Draw(h.panel, "Census", face, panelPadding, top, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	counts := provider.Counts()
	for s := nfaca.State(0); s < nfaca.NumStates; s++ {
		y := top + 8 + int(s+1)*legendLine
		h.drawSwatch(panelPadding, y-swatchSize, s.Color())
		line := fmt.Sprintf("%-8s %4d", s.String(), counts[s])
		text.Draw(h.panel, line, face, panelPadding+swatchSize+6, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (h *HUD) drawSwatch(x, y int, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(swatchSize, swatchSize)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(54.0/255.0, 56.0/255.0, 64.0/255.0, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func (h *HUD) formatValue(ctrl *hudControl) string {
	switch ctrl.control.Type {
	case core.ParamTypeInt:
		return strconv.Itoa(ctrl.intValue)
	case core.ParamTypeFloat:
		return strconv.FormatFloat(ctrl.floatValue, 'f', 2, 64)
	default:
		return "--"
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
