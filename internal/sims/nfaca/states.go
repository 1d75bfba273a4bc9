package nfaca

// State is one of the four automaton states a cell can occupy.
type State uint8

const (
	StateAlive State = iota
	StateDying
	StateStable
	StateChaotic

	// NumStates is the size of the closed state alphabet.
	NumStates = 4
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case StateAlive:
		return "Alive"
	case StateDying:
		return "Dying"
	case StateStable:
		return "Stable"
	case StateChaotic:
		return "Chaotic"
	default:
		return "Unknown"
	}
}

// Symbol is the input alphabet of the automaton: a three-way classification
// of neighborhood density. Symbols are derived each step and never stored.
type Symbol uint8

const (
	SymbolLow Symbol = iota
	SymbolMedium
	SymbolHigh

	// NumSymbols is the size of the input alphabet.
	NumSymbols = 3
)

// String returns the display name of the symbol.
func (s Symbol) String() string {
	switch s {
	case SymbolLow:
		return "L"
	case SymbolMedium:
		return "M"
	case SymbolHigh:
		return "H"
	default:
		return "?"
	}
}

// classifyDensity maps an Alive-neighbor count onto the input alphabet.
func classifyDensity(aliveNeighbors int) Symbol {
	switch {
	case aliveNeighbors <= 2:
		return SymbolLow
	case aliveNeighbors <= 4:
		return SymbolMedium
	default:
		return SymbolHigh
	}
}
