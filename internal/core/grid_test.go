package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(5, 4)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{4, 3, 4, 3},
		{5, 4, 0, 0},
		{-1, -1, 4, 3},
		{-6, -5, 4, 3},
		{12, 9, 2, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestByteGridAtSetWrapAround(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(-1, -1, 7)
	if got := g.At(2, 2); got != 7 {
		t.Fatalf("At(2,2) = %d, want 7", got)
	}
	if got := g.Cells()[g.Index(2, 2)]; got != 7 {
		t.Fatalf("backing slice value = %d, want 7", got)
	}
}

func TestByteGridClampsDegenerateDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("degenerate grid = %dx%d, want 1x1", g.W, g.H)
	}
}
