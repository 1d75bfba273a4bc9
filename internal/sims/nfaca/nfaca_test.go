package nfaca

import (
	"errors"
	"slices"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Params.InitialAlive = -0.1 },
		func(c *Config) { c.Params.BranchProb = 1.5 },
		func(c *Config) { c.Params.ChaosBias = 2 },
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -3 },
	}
	for i, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if _, err := NewWithConfig(cfg); !errors.Is(err, ErrConfig) {
			t.Fatalf("case %d: expected ErrConfig, got %v", i, err)
		}
	}

	if _, err := NewWithConfig(DefaultConfig()); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestStateAtRejectsOutOfRange(t *testing.T) {
	a := New(4, 3)
	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, err := a.StateAt(coord[0], coord[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("StateAt(%d,%d): expected ErrOutOfRange, got %v", coord[0], coord[1], err)
		}
	}
	a.Cells()[2*4+3] = uint8(StateDying)
	got, err := a.StateAt(3, 2)
	if err != nil {
		t.Fatalf("in-range query failed: %v", err)
	}
	if got != StateDying {
		t.Fatalf("StateAt(3,2) = %v, want %v", got, StateDying)
	}
}

func TestPopulationConservation(t *testing.T) {
	a := New(16, 16)
	a.Reset(7)
	for step := 0; step < 50; step++ {
		counts := a.Counts()
		total := 0
		for _, n := range counts {
			total += n
		}
		if total != 16*16 {
			t.Fatalf("step %d: population %d, want %d", step, total, 16*16)
		}
		a.Step()
	}
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 12
	cfg.Params.BranchProb = 0.4
	cfg.Params.ChaosBias = 0.6

	first, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	first.Reset(99)
	second.Reset(99)

	for step := 0; step < 30; step++ {
		if !slices.Equal(first.Cells(), second.Cells()) {
			t.Fatalf("runs diverged at step %d", step)
		}
		first.Step()
		second.Step()
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(10, 10)
	a.Reset(123)
	initial := append([]uint8(nil), a.Cells()...)

	a.Step()
	a.Step()
	a.Reset(123)
	if !slices.Equal(initial, a.Cells()) {
		t.Fatal("Reset with the same seed did not reproduce the initial grid")
	}

	a.Reset(124)
	if slices.Equal(initial, a.Cells()) {
		t.Fatal("different seeds should produce different initial grids")
	}
}

func TestChaoticExclusionWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.DisableChaotic = true
	cfg.Params.ChaosBias = 0.9
	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Reset(5)

	for step := 0; step < 40; step++ {
		for i, v := range a.Cells() {
			if State(v) == StateChaotic {
				t.Fatalf("step %d: cell %d is Chaotic while disabled", step, i)
			}
		}
		a.Step()
	}
	if got := a.CountInState(StateChaotic); got != 0 {
		t.Fatalf("CountInState(Chaotic) = %d, want 0", got)
	}
}

func TestAllAliveHighDensityScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Params.BranchProb = 1.0
	cfg.Params.ChaosBias = 0.5
	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	cells := a.Cells()
	for i := range cells {
		cells[i] = uint8(StateAlive)
	}

	// Every cell sees 8 Alive neighbors on the torus: symbol High, base
	// candidates [Chaotic, Dying], branch probability 1 picks the first.
	a.Step()

	if got := a.CountInState(StateChaotic); got != 9 {
		t.Fatalf("CountInState(Chaotic) = %d, want 9", got)
	}
	for s := State(0); s < NumStates; s++ {
		if s == StateChaotic {
			continue
		}
		if got := a.CountInState(s); got != 0 {
			t.Fatalf("CountInState(%v) = %d, want 0", s, got)
		}
	}
}

func TestAllAliveDisabledChaoticScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Params.BranchProb = 1.0
	cfg.Params.ChaosBias = 0.5
	cfg.Params.DisableChaotic = true
	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	cells := a.Cells()
	for i := range cells {
		cells[i] = uint8(StateAlive)
	}

	// Pruning leaves [Dying] for (Alive, High), so the step is deterministic.
	a.Step()

	if got := a.CountInState(StateDying); got != 9 {
		t.Fatalf("CountInState(Dying) = %d, want 9", got)
	}
}

func TestStepUsesPreStepNeighborStates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Params.BranchProb = 1.0
	cfg.Params.ChaosBias = 0.5
	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Asymmetric pattern: a sequential in-place update would let early
	// cells' new states leak into later cells' neighbor counts.
	pattern := []State{
		StateAlive, StateAlive, StateStable, StateDying, StateAlive,
		StateStable, StateAlive, StateAlive, StateAlive, StateStable,
		StateDying, StateAlive, StateChaotic, StateAlive, StateDying,
		StateStable, StateAlive, StateAlive, StateAlive, StateStable,
		StateAlive, StateDying, StateStable, StateDying, StateAlive,
	}
	cells := a.Cells()
	for i, s := range pattern {
		cells[i] = uint8(s)
	}

	// With branch probability 1 each transition deterministically takes the
	// first candidate, so the expected grid follows from the snapshot alone.
	w, h := 5, 5
	expected := make([]State, w*h)
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
					if pattern[ny*w+nx] == StateAlive {
						alive++
					}
				}
			}
			cands := Candidates(pattern[y*w+x], classifyDensity(alive), 0.5, false)
			expected[y*w+x] = cands[0]
		}
	}

	a.Step()

	for i, want := range expected {
		if got := State(a.Cells()[i]); got != want {
			t.Fatalf("cell %d: got %v, want %v (stale snapshot not used?)", i, got, want)
		}
	}
}

func TestChaosBiasRaisesChaoticFrequency(t *testing.T) {
	// Branch probability 0.7 so the reorder matters: chaotic-first lists
	// yield Chaotic with probability 0.7, chaotic-last lists with 0.3.
	const branchProb = 0.7
	chaoticShare := func(bias float64) float64 {
		cfg := DefaultConfig()
		cfg.Params.ChaosBias = bias
		cfg.Params.BranchProb = branchProb
		a, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatal(err)
		}
		a.Reset(31)

		cands := Candidates(StateAlive, SymbolMedium, bias, false)
		chaotic := 0
		const draws = 5000
		for i := 0; i < draws; i++ {
			if a.resolve(cands, branchProb) == StateChaotic {
				chaotic++
			}
		}
		return float64(chaotic) / draws
	}

	low := chaoticShare(0.2)
	high := chaoticShare(0.8)
	if low > 0.4 {
		t.Fatalf("chaotic share at bias 0.2 = %.3f, want well below 0.4", low)
	}
	if high < 0.6 {
		t.Fatalf("chaotic share at bias 0.8 = %.3f, want well above 0.6", high)
	}
}

func TestKnobsApplyOnNextStep(t *testing.T) {
	a := New(6, 6)

	if !a.SetFloatParameter("branch_prob", 0.9) {
		t.Fatal("branch_prob should be settable")
	}
	if got := a.Config().Params.BranchProb; got != 0.9 {
		t.Fatalf("branch_prob = %v, want 0.9", got)
	}

	if !a.SetFloatParameter("chaos_bias", 1.7) {
		t.Fatal("chaos_bias should clamp, not reject")
	}
	if got := a.Config().Params.ChaosBias; got != 1 {
		t.Fatalf("chaos_bias = %v, want clamp to 1", got)
	}

	if a.SetFloatParameter("unknown", 0.5) {
		t.Fatal("unknown key should be rejected")
	}

	if !a.SetIntParameter("disable_chaotic", 1) {
		t.Fatal("disable_chaotic should be settable")
	}
	if !a.Config().Params.DisableChaotic {
		t.Fatal("disable_chaotic not applied")
	}

	// The toggle must hold from the very next step.
	a.Step()
	for i, v := range a.Cells() {
		if State(v) == StateChaotic {
			t.Fatalf("cell %d became Chaotic after disabling", i)
		}
	}
}

func TestStagedEqualsCurrentBetweenSteps(t *testing.T) {
	a := New(8, 8)
	a.Reset(3)
	for step := 0; step < 5; step++ {
		a.Step()
		if !slices.Equal(a.cur.Cells(), a.nxt.Cells()) {
			t.Fatalf("step %d: staged buffer differs from committed buffer", step)
		}
	}
}
