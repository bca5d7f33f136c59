package nonogram

import "math/rand"

// Adapter wraps Solve in a loop that mutates a binary grid toward
// uniqueness. It holds no state between calls; the zero value is ready
// to use.
type Adapter struct{}

// Run iterates up to maxAttempts times, each time extracting the current
// grid's clues, solving for up to two solutions, and, when exactly two
// exist, flipping one randomly chosen differing cell toward whichever
// solution is farther from the current grid. rng must be non-nil;
// callers seed it explicitly for reproducibility.
//
// Run returns (grid, true) as soon as the induced clues admit exactly one
// solution, and (grid, false) if the budget is exhausted, the solver
// reports zero solutions for the grid's own clues (degenerate: should not
// occur for a grid that is itself a valid fill of its clues), or the two
// candidate solutions leave no differing cell to flip.
func (a *Adapter) Run(grid *Grid, maxAttempts int, rng *rand.Rand) (*Grid, bool) {
	g := grid
	for attempt := 0; attempt < maxAttempts; attempt++ {
		rows, cols := Extract(g)
		solutions, err := Solve(rows, cols, 2)
		if err != nil {
			// Extract only ever produces well-formed clues; a boundary
			// error here would indicate a programmer error upstream.
			return g, false
		}

		switch len(solutions) {
		case 1:
			return g, true
		case 0:
			return g, false
		}

		a, b := solutions[0], solutions[1]
		target := pickTarget(g, a, b)

		diff := diffCells(g, target)
		if len(diff) == 0 {
			return g, false
		}

		pick := diff[rng.Intn(len(diff))]
		g.Set(pick.row, pick.col, target.At(pick.row, pick.col))
	}
	return g, false
}

// pickTarget implements the target-selection rule: prefer whichever of
// a, b differs from g (since one of them may equal g exactly, in which
// case flipping toward it would be a no-op), and among two differing
// candidates prefer the one farther from g, ties toward a.
func pickTarget(g, a, b *Grid) *Grid {
	aEqual := a.Equal(g)
	bEqual := b.Equal(g)
	switch {
	case aEqual && bEqual:
		// Undefined upstream; treated here as "no useful target",
		// surfaced by the caller via an empty diff.
		return a
	case aEqual:
		return b
	case bEqual:
		return a
	}
	if b.DiffCount(g) > a.DiffCount(g) {
		return b
	}
	return a
}

type cellPos struct{ row, col int }

func diffCells(g, target *Grid) []cellPos {
	var diff []cellPos
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if g.At(r, c) != target.At(r, c) {
				diff = append(diff, cellPos{r, c})
			}
		}
	}
	return diff
}
