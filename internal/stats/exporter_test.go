package stats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"nfa-ca/internal/sims/nfaca"
)

func TestExporterPublishesCensus(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := NewExporter(reg)

	e.Observe(Census{10, 4, 5, 1})

	require.Equal(t, 10.0, testutil.ToFloat64(e.cells.WithLabelValues(nfaca.StateAlive.String())))
	require.Equal(t, 4.0, testutil.ToFloat64(e.cells.WithLabelValues(nfaca.StateDying.String())))
	require.Equal(t, 5.0, testutil.ToFloat64(e.cells.WithLabelValues(nfaca.StateStable.String())))
	require.Equal(t, 1.0, testutil.ToFloat64(e.cells.WithLabelValues(nfaca.StateChaotic.String())))
	require.Equal(t, 1.0, testutil.ToFloat64(e.steps))

	e.Observe(Census{8, 6, 5, 1})
	require.Equal(t, 8.0, testutil.ToFloat64(e.cells.WithLabelValues(nfaca.StateAlive.String())))
	require.Equal(t, 2.0, testutil.ToFloat64(e.steps))
}
