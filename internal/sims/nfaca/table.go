package nfaca

import "fmt"

// baseTable maps (state, symbol) to the ordered candidate next states.
// Candidate order matters: the branch probability weights the first entry.
var baseTable = [NumStates][NumSymbols][]State{
	StateAlive: {
		SymbolLow:    {StateAlive, StateStable},
		SymbolMedium: {StateDying, StateChaotic},
		SymbolHigh:   {StateChaotic, StateDying},
	},
	StateDying: {
		SymbolLow:    {StateStable, StateAlive},
		SymbolMedium: {StateChaotic, StateAlive},
		SymbolHigh:   {StateChaotic, StateDying},
	},
	StateStable: {
		SymbolLow:    {StateAlive, StateStable},
		SymbolMedium: {StateDying, StateStable},
		SymbolHigh:   {StateChaotic, StateStable},
	},
	StateChaotic: {
		SymbolLow:    {StateStable, StateAlive},
		SymbolMedium: {StateAlive, StateDying},
		SymbolHigh:   {StateChaotic, StateDying},
	},
}

// Candidates returns the rewired candidate list for (state, symbol).
//
// Rewiring derives from the base table each call: a chaos bias above 0.7
// stably moves Chaotic candidates to the front, below 0.3 to the back, and
// the closed interval [0.3, 0.7] preserves base order. When the Chaotic
// state is disabled it is pruned from the list entirely, falling back to a
// single Stable candidate if nothing remains. The result is never empty.
func Candidates(s State, sym Symbol, chaosBias float64, disableChaotic bool) []State {
	if int(s) >= NumStates || int(sym) >= NumSymbols {
		panic(fmt.Sprintf("nfaca: no transition entry for (%v, %v)", s, sym))
	}
	base := baseTable[s][sym]
	if len(base) == 0 {
		panic(fmt.Sprintf("nfaca: empty base transition entry for (%v, %v)", s, sym))
	}
	return rewire(base, chaosBias, disableChaotic)
}

// rewire applies bias reordering and the disable pruning to one candidate
// list. The input is never mutated.
func rewire(base []State, chaosBias float64, disableChaotic bool) []State {
	out := make([]State, 0, len(base))

	switch {
	case chaosBias > 0.7:
		for _, s := range base {
			if s == StateChaotic {
				out = append(out, s)
			}
		}
		for _, s := range base {
			if s != StateChaotic {
				out = append(out, s)
			}
		}
	case chaosBias < 0.3:
		for _, s := range base {
			if s != StateChaotic {
				out = append(out, s)
			}
		}
		for _, s := range base {
			if s == StateChaotic {
				out = append(out, s)
			}
		}
	default:
		out = append(out, base...)
	}

	if disableChaotic {
		kept := out[:0]
		for _, s := range out {
			if s != StateChaotic {
				kept = append(kept, s)
			}
		}
		out = kept
		if len(out) == 0 {
			out = append(out, StateStable)
		}
	}

	return out
}
