package nonogram

import "testing"

func TestPropagatePinsForcedCells(t *testing.T) {
	// A 1x5 grid with clue [5] must propagate to fully filled in one pass.
	rows := []Clue{{5}}
	cols := []Clue{{1}, {1}, {1}, {1}, {1}}
	g := NewGrid(5, 1, Unknown)
	enum := newEnumerator()

	contradiction := Propagate(g, rows, cols, enum)
	if contradiction {
		t.Fatalf("unexpected contradiction")
	}
	if !g.FullyKnown() {
		t.Fatalf("expected propagation to fully resolve the grid, got:\n%s", g.String())
	}
	for c := 0; c < 5; c++ {
		if g.At(0, c) != Filled {
			t.Errorf("cell %d not filled", c)
		}
	}
}

func TestPropagateDetectsContradiction(t *testing.T) {
	rows := []Clue{{5}, {5}}
	cols := []Clue{{1}, {1}, {1}, {1}, {1}}
	g := NewGrid(5, 2, Unknown)
	enum := newEnumerator()

	if contradiction := Propagate(g, rows, cols, enum); !contradiction {
		t.Fatalf("expected contradiction for 5x2-of-5-singles puzzle")
	}
}

func TestPropagateMonotonicity(t *testing.T) {
	// Known cells must never regress from known back to Unknown across
	// repeated propagation.
	rows := []Clue{{2}, {1, 1}, {2}}
	cols := []Clue{{1}, {3}, {1}}
	g := NewGrid(3, 3, Unknown)
	enum := newEnumerator()

	Propagate(g, rows, cols, enum)
	snapshot := g.Clone()

	// Re-running propagation on an already-propagated grid must not
	// un-pin any cell.
	Propagate(g, rows, cols, enum)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			before := snapshot.At(r, c)
			after := g.At(r, c)
			if before != Unknown && after == Unknown {
				t.Fatalf("cell (%d,%d) regressed from %v to Unknown", r, c, before)
			}
		}
	}
}

func TestIntersectFillsShortCircuitsOnFullDivergence(t *testing.T) {
	fills := []Fill{
		{Filled, Empty},
		{Empty, Filled},
		{Filled, Filled},
	}
	got := intersectFills(fills)
	if got[0] != Unknown || got[1] != Unknown {
		t.Fatalf("expected full divergence, got %v", got)
	}
}
