package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nfa-ca/internal/sims/nfaca"
)

func TestTakeCensusCoversPopulation(t *testing.T) {
	a := nfaca.New(10, 8)
	a.Reset(11)

	c := TakeCensus(a)
	require.Equal(t, 80, c.Total())

	for s := nfaca.State(0); s < nfaca.NumStates; s++ {
		require.Equal(t, a.CountInState(s), c[s])
	}
}

func TestRecorderSeries(t *testing.T) {
	r := NewRecorder()
	require.Zero(t, r.Len())
	require.Equal(t, Census{}, r.Last())

	r.Record(Census{9, 0, 0, 0})
	r.Record(Census{5, 2, 2, 0})
	r.Record(Census{1, 3, 3, 2})

	require.Equal(t, 3, r.Len())
	require.Equal(t, Census{1, 3, 3, 2}, r.Last())
	require.Equal(t, Census{5, 2, 2, 0}, r.At(1))
	require.Equal(t, []int{9, 5, 1}, r.Series(nfaca.StateAlive))
	require.Equal(t, []int{0, 0, 2}, r.Series(nfaca.StateChaotic))

	tail := r.Tail(2)
	require.Len(t, tail, 2)
	require.Equal(t, Census{5, 2, 2, 0}, tail[0])

	require.Len(t, r.Tail(10), 3)
	require.Nil(t, r.Tail(0))

	r.Reset()
	require.Zero(t, r.Len())
}

func TestRecorderSamplesPreStepState(t *testing.T) {
	a := nfaca.New(6, 6)
	a.Reset(21)
	r := NewRecorder()

	before := TakeCensus(a)
	r.Record(before)
	a.Step()

	require.Equal(t, before, r.Last(), "recorded row must reflect the generation the step started from")
	require.Equal(t, 36, r.Last().Total())
}
