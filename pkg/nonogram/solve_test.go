package nonogram

import (
	"errors"
	"testing"
)

func mustSolutions(t *testing.T, rows, cols []Clue, k int) []*Grid {
	t.Helper()
	solutions, err := Solve(rows, cols, k)
	if err != nil {
		t.Fatalf("Solve returned unexpected error: %v", err)
	}
	return solutions
}

func TestSolveAllEmptyPuzzle(t *testing.T) {
	rows := []Clue{{0}, {0}, {0}}
	cols := []Clue{{0}, {0}, {0}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 1 {
		t.Fatalf("expected 1 solution, got %d", len(solutions))
	}
	if !solutions[0].FullyKnown() {
		t.Fatalf("solution not fully known")
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if solutions[0].At(r, c) != Empty {
				t.Fatalf("expected zero grid, cell (%d,%d) = %v", r, c, solutions[0].At(r, c))
			}
		}
	}
}

func TestSolveAllFilledPuzzle(t *testing.T) {
	rows := []Clue{{3}, {3}, {3}}
	cols := []Clue{{3}, {3}, {3}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 1 {
		t.Fatalf("expected 1 solution, got %d", len(solutions))
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if solutions[0].At(r, c) != Filled {
				t.Fatalf("expected all-filled grid, cell (%d,%d) = %v", r, c, solutions[0].At(r, c))
			}
		}
	}
}

func TestSolveOverlongClueYieldsNoSolutions(t *testing.T) {
	rows := []Clue{{6}}
	cols := []Clue{{1}, {1}, {1}, {1}, {1}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 0 {
		t.Fatalf("expected 0 solutions for overlong clue, got %d", len(solutions))
	}
}

func TestSolveMinimalAmbiguous2x2(t *testing.T) {
	rows := []Clue{{1}, {1}}
	cols := []Clue{{1}, {1}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 2 {
		t.Fatalf("expected 2 solutions for ambiguous 2x2, got %d", len(solutions))
	}
	if solutions[0].Equal(solutions[1]) {
		t.Fatalf("expected distinct solutions")
	}
}

func TestSolveFiveByFiveCross(t *testing.T) {
	rows := []Clue{{1}, {1}, {5}, {1}, {1}}
	cols := []Clue{{1}, {1}, {5}, {1}, {1}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 1 {
		t.Fatalf("expected unique solution, got %d", len(solutions))
	}
	got := solutions[0]
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := Empty
			if c == 2 || r == 2 {
				want = Filled
			}
			if got.At(r, c) != want {
				t.Fatalf("cross mismatch at (%d,%d): got %v want %v\n%s", r, c, got.At(r, c), want, got.String())
			}
		}
	}
}

func TestSolveThreeByThreeBlock(t *testing.T) {
	rows := []Clue{{3}, {3}, {3}}
	cols := []Clue{{3}, {3}, {3}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 1 {
		t.Fatalf("expected unique solution, got %d", len(solutions))
	}
}

func TestSolveUnsolvablePuzzle(t *testing.T) {
	rows := []Clue{{5}, {5}}
	cols := []Clue{{1}, {1}, {1}, {1}, {1}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 0 {
		t.Fatalf("expected unsolvable puzzle to yield 0 solutions, got %d", len(solutions))
	}
}

func TestSolveEmptyLineScenario(t *testing.T) {
	rows := []Clue{{0}, {2}}
	cols := []Clue{{1}, {1}, {0}}
	solutions := mustSolutions(t, rows, cols, 2)
	if len(solutions) != 1 {
		t.Fatalf("expected unique solution, got %d", len(solutions))
	}
	got := solutions[0]
	wantRow0 := []Cell{Empty, Empty, Empty}
	wantRow1 := []Cell{Filled, Filled, Empty}
	for c := 0; c < 3; c++ {
		if got.At(0, c) != wantRow0[c] {
			t.Fatalf("row 0 mismatch at col %d: got %v", c, got.At(0, c))
		}
		if got.At(1, c) != wantRow1[c] {
			t.Fatalf("row 1 mismatch at col %d: got %v", c, got.At(1, c))
		}
	}
}

func TestSolveSolutionsAreSound(t *testing.T) {
	rows := []Clue{{2}, {1, 1}, {2}}
	cols := []Clue{{3}, {1, 1}, {1}}
	solutions := mustSolutions(t, rows, cols, 2)
	for i, g := range solutions {
		if !Validate(g, rows, cols) {
			t.Errorf("solution %d failed validation:\n%s", i, g.String())
		}
	}
}

func TestSolveRejectsInvalidK(t *testing.T) {
	_, err := Solve([]Clue{{0}}, []Clue{{0}}, 0)
	if !errors.Is(err, ErrInvalidK) {
		t.Fatalf("expected ErrInvalidK, got %v", err)
	}
}

func TestSolveRejectsNegativeClue(t *testing.T) {
	_, err := Solve([]Clue{{-1}}, []Clue{{0}}, 1)
	if !errors.Is(err, ErrNegativeClue) {
		t.Fatalf("expected ErrNegativeClue, got %v", err)
	}
}
