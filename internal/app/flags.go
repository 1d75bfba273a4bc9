package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width  int
	Height int

	InitialAlive float64
	BranchProb   float64
	ChaosBias    float64
	NoChaotic    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:          "nfaca",
		Scale:        24,
		TPS:          10,
		Seed:         42,
		Width:        20,
		Height:       20,
		InitialAlive: 0.3,
		BranchProb:   0.5,
		ChaosBias:    0.2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.InitialAlive, "alive", c.InitialAlive, "initial alive probability")
	fs.Float64Var(&c.BranchProb, "branch", c.BranchProb, "branch probability for nondeterministic transitions")
	fs.Float64Var(&c.ChaosBias, "chaos", c.ChaosBias, "chaos bias for transition rewiring")
	fs.BoolVar(&c.NoChaotic, "no-chaotic", c.NoChaotic, "disable the chaotic state")
}

// SimConfig renders the model parameters as a flag-style config map for the
// sim registry.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":               strconv.Itoa(c.Width),
		"h":               strconv.Itoa(c.Height),
		"seed":            strconv.FormatInt(c.Seed, 10),
		"initial_alive":   strconv.FormatFloat(c.InitialAlive, 'f', -1, 64),
		"branch_prob":     strconv.FormatFloat(c.BranchProb, 'f', -1, 64),
		"chaos_bias":      strconv.FormatFloat(c.ChaosBias, 'f', -1, 64),
		"disable_chaotic": strconv.FormatBool(c.NoChaotic),
	}
}
