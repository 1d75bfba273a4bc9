package stats

import "nfa-ca/internal/sims/nfaca"

// Census is a per-state cell count for one generation. Indices are
// nfaca.State values; the counts always sum to the grid population.
type Census [nfaca.NumStates]int

// Total returns the summed population of the census.
func (c Census) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// TakeCensus counts the automaton's current states. Callers sampling a run
// take the census before stepping, so each row reflects the generation the
// step starts from.
func TakeCensus(a *nfaca.Automaton) Census {
	return Census(a.Counts())
}

// Recorder accumulates one Census per step as an in-memory time series.
type Recorder struct {
	rows []Census
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one census row.
func (r *Recorder) Record(c Census) {
	r.rows = append(r.rows, c)
}

// Len returns the number of recorded rows.
func (r *Recorder) Len() int { return len(r.rows) }

// At returns row i.
func (r *Recorder) At(i int) Census { return r.rows[i] }

// Last returns the most recent row, or a zero census when empty.
func (r *Recorder) Last() Census {
	if len(r.rows) == 0 {
		return Census{}
	}
	return r.rows[len(r.rows)-1]
}

// Series returns the count history of a single state, oldest first.
func (r *Recorder) Series(s nfaca.State) []int {
	out := make([]int, len(r.rows))
	for i, row := range r.rows {
		out[i] = row[s]
	}
	return out
}

// Tail returns up to n of the most recent rows, oldest first.
func (r *Recorder) Tail(n int) []Census {
	if n <= 0 || len(r.rows) == 0 {
		return nil
	}
	if n > len(r.rows) {
		n = len(r.rows)
	}
	return r.rows[len(r.rows)-n:]
}

// Reset discards all recorded rows.
func (r *Recorder) Reset() {
	r.rows = r.rows[:0]
}
