package stats

import (
	"github.com/prometheus/client_golang/prometheus"

	"nfa-ca/internal/sims/nfaca"
)

// Exporter publishes the census as Prometheus metrics: one gauge per state
// plus a step counter.
type Exporter struct {
	cells *prometheus.GaugeVec
	steps prometheus.Counter
}

// NewExporter constructs an exporter and registers its collectors with reg.
func NewExporter(reg prometheus.Registerer) *Exporter {
	e := &Exporter{
		cells: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "nfaca_cells",
				Help: "Number of cells currently in each automaton state",
			},
			[]string{"state"},
		),
		steps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nfaca_steps_total",
				Help: "Total simulation steps observed",
			},
		),
	}
	reg.MustRegister(e.cells, e.steps)
	return e
}

// Observe publishes one census row and counts the step.
func (e *Exporter) Observe(c Census) {
	for s := nfaca.State(0); s < nfaca.NumStates; s++ {
		e.cells.WithLabelValues(s.String()).Set(float64(c[s]))
	}
	e.steps.Inc()
}
