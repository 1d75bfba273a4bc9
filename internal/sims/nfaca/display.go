package nfaca

import "image/color"

var statePalette = [NumStates]color.RGBA{
	StateAlive:   {R: 0, G: 160, B: 70, A: 255},
	StateDying:   {R: 210, G: 55, B: 45, A: 255},
	StateStable:  {R: 128, G: 40, B: 160, A: 255},
	StateChaotic: {R: 128, G: 128, B: 128, A: 255},
}

// Palette exposes the per-state render colors. Cell values index directly
// into the returned slice.
func (a *Automaton) Palette() []color.RGBA {
	return statePalette[:]
}

// Color returns the render color for one state.
func (s State) Color() color.RGBA {
	if int(s) >= NumStates {
		return color.RGBA{A: 255}
	}
	return statePalette[s]
}
