package nfaca

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrConfig reports a construction-time parameter outside its valid range.
var ErrConfig = errors.New("nfaca: invalid configuration")

// Params holds the global knobs that steer every cell's transition behavior.
// All four are adjustable while the simulation runs; changes apply from the
// next step onward.
type Params struct {
	// InitialAlive is the Bernoulli probability that a cell starts Alive
	// rather than Stable.
	InitialAlive float64
	// BranchProb is the weight of the first candidate when a transition
	// offers more than one legal next state.
	BranchProb float64
	// ChaosBias reorders candidate lists toward (>0.7) or away from (<0.3)
	// the Chaotic state.
	ChaosBias float64
	// DisableChaotic removes Chaotic from the active alphabet entirely.
	DisableChaotic bool
}

// Config controls the automaton dimensions and initial parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  20,
		Height: 20,
		Seed:   1337,
		Params: Params{
			InitialAlive:   0.3,
			BranchProb:     0.5,
			ChaosBias:      0.2,
			DisableChaotic: false,
		},
	}
}

// validate rejects dimensions and probabilities outside their legal ranges.
func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrConfig, c.Width, c.Height)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"initial_alive", c.Params.InitialAlive},
		{"branch_prob", c.Params.BranchProb},
		{"chaos_bias", c.Params.ChaosBias},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%w: %s=%v outside [0,1]", ErrConfig, p.name, p.value)
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["initial_alive"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.InitialAlive = parsed
		}
	}
	if v, ok := cfg["branch_prob"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BranchProb = parsed
		}
	}
	if v, ok := cfg["chaos_bias"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ChaosBias = parsed
		}
	}
	if v, ok := cfg["disable_chaotic"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DisableChaotic = parsed
		}
	}
	return c
}
