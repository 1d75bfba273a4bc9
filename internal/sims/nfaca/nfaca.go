package nfaca

import (
	"errors"
	"fmt"

	"nfa-ca/internal/core"
	prng "nfa-ca/pkg/core"
)

// ErrOutOfRange reports a cell query outside the grid bounds.
var ErrOutOfRange = errors.New("nfaca: coordinate out of range")

// Automaton is a toroidal grid of nondeterministic finite automata. Each
// cell reads its Moore neighborhood's density as an input symbol and
// resolves its transition through the shared rewirable table.
//
// Stepping is two-phase: every cell's next state is computed against the
// current buffer, then the buffers swap so all cells commit at once. Between
// steps the two buffers hold identical contents.
type Automaton struct {
	cfg Config

	w, h int
	cur  *core.ByteGrid
	nxt  *core.ByteGrid

	gen int

	rng *prng.RNG
}

// New returns an automaton with the provided dimensions and default parameters.
func New(w, h int) *Automaton {
	cfg := DefaultConfig()
	if w > 0 {
		cfg.Width = w
	}
	if h > 0 {
		cfg.Height = h
	}
	a, _ := NewWithConfig(cfg)
	return a
}

// NewWithConfig returns an automaton configured from the provided options.
// Construction fails only on out-of-range parameters.
func NewWithConfig(cfg Config) (*Automaton, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a := &Automaton{
		cfg: cfg,
		w:   cfg.Width,
		h:   cfg.Height,
		cur: core.NewByteGrid(cfg.Width, cfg.Height),
		nxt: core.NewByteGrid(cfg.Width, cfg.Height),
		rng: prng.NewRNG(cfg.Seed),
	}
	a.seedInitialStates()
	return a, nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "nfaca" }

// Size reports the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.w, H: a.h} }

// Cells exposes the current state buffer, one State value per cell.
func (a *Automaton) Cells() []uint8 { return a.cur.Cells() }

// Config returns a copy of the active configuration.
func (a *Automaton) Config() Config { return a.cfg }

// Generation returns the number of steps taken since the last reset.
func (a *Automaton) Generation() int { return a.gen }

// Reset reseeds the RNG and redraws every cell's initial state: Alive with
// probability InitialAlive, Stable otherwise. A zero seed falls back to the
// configured seed.
func (a *Automaton) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = a.cfg.Seed
	}
	a.rng = prng.NewRNG(effective)
	a.gen = 0
	a.seedInitialStates()
}

func (a *Automaton) seedInitialStates() {
	for y := 0; y < a.h; y++ {
		for x := 0; x < a.w; x++ {
			s := StateStable
			if a.rng.Chance(a.cfg.Params.InitialAlive) {
				s = StateAlive
			}
			a.cur.Set(x, y, uint8(s))
		}
	}
	copy(a.nxt.Cells(), a.cur.Cells())
}

// Step advances every cell by one generation. Phase one computes each
// cell's next state from the current buffer only; phase two commits them
// all at once by swapping buffers. Parameter changes made since the last
// call take effect here, never mid-step.
func (a *Automaton) Step() {
	p := a.cfg.Params

	w, h := a.w, a.h
	cur := a.cur.Cells()
	nxt := a.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if State(cur[ny*w+nx]) == StateAlive {
						alive++
					}
				}
			}

			state := State(cur[y*w+x])
			cands := Candidates(state, classifyDensity(alive), p.ChaosBias, p.DisableChaotic)
			next := a.resolve(cands, p.BranchProb)
			// Second safety net besides table pruning: a disabled Chaotic
			// result falls back to Stable no matter how it was reached.
			if p.DisableChaotic && next == StateChaotic {
				next = StateStable
			}
			nxt[y*w+x] = uint8(next)
		}
	}

	a.cur, a.nxt = a.nxt, a.cur
	copy(a.nxt.Cells(), a.cur.Cells())
	a.gen++
}

// resolve picks the next state from a non-empty candidate list. One
// candidate is deterministic. Otherwise a single uniform draw decides:
// the first candidate wins with probability branchProb; the remaining
// mass splits evenly across the rest, which for the two-candidate lists
// the base table produces is exactly a branchProb / 1-branchProb split.
func (a *Automaton) resolve(cands []State, branchProb float64) State {
	if len(cands) == 1 {
		return cands[0]
	}
	draw := a.rng.Float64()
	if draw < branchProb {
		return cands[0]
	}
	// draw >= branchProb and draw < 1, so branchProb < 1 here.
	scaled := (draw - branchProb) / (1 - branchProb)
	idx := 1 + int(scaled*float64(len(cands)-1))
	if idx >= len(cands) {
		idx = len(cands) - 1
	}
	return cands[idx]
}

// CountInState returns how many cells currently occupy state s.
func (a *Automaton) CountInState(s State) int {
	count := 0
	for _, v := range a.cur.Cells() {
		if State(v) == s {
			count++
		}
	}
	return count
}

// Counts returns the per-state census of the current generation.
func (a *Automaton) Counts() [NumStates]int {
	var counts [NumStates]int
	for _, v := range a.cur.Cells() {
		counts[v]++
	}
	return counts
}

// StateAt returns the committed state of the cell at (x, y). Coordinates
// outside [0,W)x[0,H) are rejected; callers wanting toroidal access should
// wrap before querying.
func (a *Automaton) StateAt(x, y int) (State, error) {
	if x < 0 || x >= a.w || y < 0 || y >= a.h {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, x, y, a.w, a.h)
	}
	return State(a.cur.At(x, y)), nil
}

func init() {
	core.Register("nfaca", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		a, err := NewWithConfig(c)
		if err != nil {
			a, _ = NewWithConfig(DefaultConfig())
		}
		return a
	})
}
