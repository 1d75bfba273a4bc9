package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nfa-ca/internal/core"
	"nfa-ca/internal/sims/nfaca"
	"nfa-ca/internal/stats"
)

type config struct {
	Steps  int
	Seed   int64
	TPS    int
	Listen string

	Width  int
	Height int

	InitialAlive float64
	BranchProb   float64
	ChaosBias    float64
	NoChaotic    bool
}

func main() {
	cfg := &config{
		Steps:        200,
		Seed:         42,
		TPS:          20,
		Width:        20,
		Height:       20,
		InitialAlive: 0.3,
		BranchProb:   0.5,
		ChaosBias:    0.2,
	}
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of generations to simulate")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the initial grid")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "steps per second when serving metrics")
	flag.StringVar(&cfg.Listen, "listen", cfg.Listen, "address for the Prometheus endpoint (empty runs unpaced)")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height in cells")
	flag.Float64Var(&cfg.InitialAlive, "alive", cfg.InitialAlive, "initial alive probability")
	flag.Float64Var(&cfg.BranchProb, "branch", cfg.BranchProb, "branch probability for nondeterministic transitions")
	flag.Float64Var(&cfg.ChaosBias, "chaos", cfg.ChaosBias, "chaos bias for transition rewiring")
	flag.BoolVar(&cfg.NoChaotic, "no-chaotic", cfg.NoChaotic, "disable the chaotic state")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

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
		logger.Error("configuration rejected", "error", err)
		os.Exit(1)
	}
	a.Reset(cfg.Seed)

	var exporter *stats.Exporter
	if cfg.Listen != "" {
		reg := prometheus.NewRegistry()
		exporter = stats.NewExporter(reg)
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			logger.Info("serving metrics", "addr", cfg.Listen)
			if err := http.ListenAndServe(cfg.Listen, nil); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	logger.Info("run started",
		"steps", cfg.Steps,
		"seed", cfg.Seed,
		"grid", cfg.Width*cfg.Height,
		"initial_alive", cfg.InitialAlive,
		"branch_prob", cfg.BranchProb,
		"chaos_bias", cfg.ChaosBias,
		"disable_chaotic", cfg.NoChaotic,
	)

	rec := stats.NewRecorder()
	pacer := core.NewFixedStep(cfg.TPS)
	start := time.Now()
	for done := 0; done < cfg.Steps; {
		if cfg.Listen != "" && !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		// The census describes the generation the step starts from.
		census := stats.TakeCensus(a)
		rec.Record(census)
		if exporter != nil {
			exporter.Observe(census)
		}
		a.Step()
		done++
	}

	final := stats.TakeCensus(a)
	logger.Info("run finished",
		"steps", rec.Len(),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
		"alive", final[nfaca.StateAlive],
		"dying", final[nfaca.StateDying],
		"stable", final[nfaca.StateStable],
		"chaotic", final[nfaca.StateChaotic],
		"population", final.Total(),
	)

	if cfg.Listen != "" {
		logger.Info("metrics still serving, interrupt to exit", "addr", cfg.Listen)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info("goodbye")
	}
}
