package main

import (
	"flag"
	"log"
	"time"

	"nfa-ca/internal/sims/nfaca"
	"nfa-ca/internal/tui"
)

type config struct {
	Seed     int64
	Interval time.Duration

	Width  int
	Height int

	InitialAlive float64
	BranchProb   float64
	ChaosBias    float64
	NoChaotic    bool
}

func main() {
	cfg := &config{
		Seed:         42,
		Interval:     150 * time.Millisecond,
		Width:        20,
		Height:       20,
		InitialAlive: 0.3,
		BranchProb:   0.5,
		ChaosBias:    0.2,
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the initial grid")
	flag.DurationVar(&cfg.Interval, "interval", cfg.Interval, "delay between steps in run mode")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height in cells")
	flag.Float64Var(&cfg.InitialAlive, "alive", cfg.InitialAlive, "initial alive probability")
	flag.Float64Var(&cfg.BranchProb, "branch", cfg.BranchProb, "branch probability for nondeterministic transitions")
	flag.Float64Var(&cfg.ChaosBias, "chaos", cfg.ChaosBias, "chaos bias for transition rewiring")
	flag.BoolVar(&cfg.NoChaotic, "no-chaotic", cfg.NoChaotic, "disable the chaotic state")
	flag.Parse()

	simCfg := nfaca.DefaultConfig()
	simCfg.Width = cfg.Width
	simCfg.Height = cfg.Height
	simCfg.Seed = cfg.Seed
	simCfg.Params.InitialAlive = cfg.InitialAlive
	simCfg.Params.BranchProb = cfg.BranchProb
	simCfg.Params.ChaosBias = cfg.ChaosBias
	simCfg.Params.DisableChaotic = cfg.NoChaotic

	a, err := nfaca.NewWithConfig(simCfg)
	if err != nil {
		log.Fatal(err)
	}
	a.Reset(cfg.Seed)

	tui.New(a, cfg.Seed, cfg.Interval).Start()
}
