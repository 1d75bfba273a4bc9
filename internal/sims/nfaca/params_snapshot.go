package nfaca

import (
	"strconv"

	"nfa-ca/internal/core"
)

// Parameters reports the current configuration for display surfaces.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	params := a.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", a.cfg.Width),
				intParam("h", "Height", a.cfg.Height),
				int64Param("seed", "Seed", a.cfg.Seed),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				floatParam("initial_alive", "Initial alive ratio", params.InitialAlive),
				floatParam("branch_prob", "Branch probability", params.BranchProb),
				floatParam("chaos_bias", "Chaos bias", params.ChaosBias),
				boolIntParam("disable_chaotic", "Disable chaotic", params.DisableChaotic),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the knobs adjustable from the HUD. These mirror
// the run-time sliders of the interactive surface: three probabilities in
// [0,1] and the chaotic on/off toggle.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "initial_alive", Label: "Initial alive", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "branch_prob", Label: "Branch prob", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "chaos_bias", Label: "Chaos bias", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "disable_chaotic", Label: "Disable chaotic", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates one of the probability knobs, clamping to
// [0,1]. The new value is picked up by the next Step call.
func (a *Automaton) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	switch key {
	case "initial_alive":
		a.cfg.Params.InitialAlive = value
	case "branch_prob":
		a.cfg.Params.BranchProb = value
	case "chaos_bias":
		a.cfg.Params.ChaosBias = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates the chaotic toggle (0 enables, anything else
// disables), taking effect on the next Step call.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "disable_chaotic":
		a.cfg.Params.DisableChaotic = value != 0
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolIntParam(key, label string, value bool) core.Parameter {
	v := "0"
	if value {
		v = "1"
	}
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: v,
	}
}
