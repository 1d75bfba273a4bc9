package nfaca

import (
	"slices"
	"testing"
)

func TestBaseTableCoversClosedSpace(t *testing.T) {
	for s := State(0); s < NumStates; s++ {
		for sym := Symbol(0); sym < NumSymbols; sym++ {
			entry := baseTable[s][sym]
			if len(entry) != 2 {
				t.Fatalf("base entry (%v,%v) has %d candidates, want 2", s, sym, len(entry))
			}
		}
	}
}

func TestCandidatesNeverEmpty(t *testing.T) {
	biases := []float64{0, 0.2, 0.3, 0.5, 0.7, 0.8, 1}
	for s := State(0); s < NumStates; s++ {
		for sym := Symbol(0); sym < NumSymbols; sym++ {
			for _, bias := range biases {
				for _, disabled := range []bool{false, true} {
					cands := Candidates(s, sym, bias, disabled)
					if len(cands) == 0 {
						t.Fatalf("empty candidates for (%v,%v) bias=%v disabled=%v", s, sym, bias, disabled)
					}
					if disabled && slices.Contains(cands, StateChaotic) {
						t.Fatalf("chaotic candidate survived pruning for (%v,%v) bias=%v", s, sym, bias)
					}
				}
			}
		}
	}
}

func TestChaosBiasReordersCandidates(t *testing.T) {
	// Base order for (Alive, Medium) is [Dying, Chaotic].
	got := Candidates(StateAlive, SymbolMedium, 0.8, false)
	if !slices.Equal(got, []State{StateChaotic, StateDying}) {
		t.Fatalf("high bias order = %v, want [Chaotic Dying]", got)
	}

	got = Candidates(StateAlive, SymbolMedium, 0.2, false)
	if !slices.Equal(got, []State{StateDying, StateChaotic}) {
		t.Fatalf("low bias order = %v, want [Dying Chaotic]", got)
	}

	got = Candidates(StateAlive, SymbolMedium, 0.5, false)
	if !slices.Equal(got, []State{StateDying, StateChaotic}) {
		t.Fatalf("neutral bias order = %v, want base order [Dying Chaotic]", got)
	}
}

func TestChaosBiasBoundariesKeepBaseOrder(t *testing.T) {
	// The comparisons are strict: exactly 0.7 and 0.3 do not reorder.
	base := []State{StateDying, StateChaotic}
	if got := Candidates(StateAlive, SymbolMedium, 0.7, false); !slices.Equal(got, base) {
		t.Fatalf("bias 0.7 reordered to %v", got)
	}
	if got := Candidates(StateAlive, SymbolMedium, 0.3, false); !slices.Equal(got, base) {
		t.Fatalf("bias 0.3 reordered to %v", got)
	}
}

func TestRewireIsStable(t *testing.T) {
	// Ties must preserve base order on both sides of the partition.
	base := []State{StateAlive, StateChaotic, StateStable, StateChaotic}
	if got := rewire(base, 0.9, false); !slices.Equal(got, []State{StateChaotic, StateChaotic, StateAlive, StateStable}) {
		t.Fatalf("chaotic-first rewire = %v", got)
	}
	if got := rewire(base, 0.1, false); !slices.Equal(got, []State{StateAlive, StateStable, StateChaotic, StateChaotic}) {
		t.Fatalf("chaotic-last rewire = %v", got)
	}
	if !slices.Equal(base, []State{StateAlive, StateChaotic, StateStable, StateChaotic}) {
		t.Fatal("rewire mutated its input")
	}
}

func TestRewireFallbackWhenPruningEmpties(t *testing.T) {
	got := rewire([]State{StateChaotic}, 0.5, true)
	if !slices.Equal(got, []State{StateStable}) {
		t.Fatalf("fallback = %v, want [Stable]", got)
	}
}

func TestDisabledChaoticPrunedFromTable(t *testing.T) {
	got := Candidates(StateAlive, SymbolHigh, 0.5, true)
	if !slices.Equal(got, []State{StateDying}) {
		t.Fatalf("(Alive,High) disabled = %v, want [Dying]", got)
	}
}

func TestClassifyDensity(t *testing.T) {
	cases := []struct {
		count int
		want  Symbol
	}{
		{0, SymbolLow}, {2, SymbolLow},
		{3, SymbolMedium}, {4, SymbolMedium},
		{5, SymbolHigh}, {8, SymbolHigh},
	}
	for _, c := range cases {
		if got := classifyDensity(c.count); got != c.want {
			t.Fatalf("classifyDensity(%d) = %v, want %v", c.count, got, c.want)
		}
	}
}
