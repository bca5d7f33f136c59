package nonogram

// Solve enumerates up to k distinct solutions for the given row and
// column clues. It returns a nil slice with a nil error when the clues
// are infeasible for any line, surfaced as an empty result rather than
// an error, and a non-nil error only for the contract violations in
// errors.go.
func Solve(rows, cols []Clue, k int) ([]*Grid, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	for _, c := range rows {
		if hasNegativeRun(c) {
			return nil, ErrNegativeClue
		}
	}
	for _, c := range cols {
		if hasNegativeRun(c) {
			return nil, ErrNegativeClue
		}
	}

	h, w := len(rows), len(cols)
	enum := newEnumerator()
	g := NewGrid(w, h, Unknown)

	s := &searcher{rows: rows, cols: cols, enum: enum, k: k}
	s.search(g)
	return s.results, nil
}

func hasNegativeRun(c Clue) bool {
	for _, v := range c {
		if v < 0 {
			return true
		}
	}
	return false
}

// searcher drives the propagate-then-branch backtracking search.
type searcher struct {
	rows, cols []Clue
	enum       *enumerator
	k          int
	results    []*Grid
}

// search runs propagation to fixpoint, then either records a solution,
// bails on contradiction, or branches on the most-constrained row.
func (s *searcher) search(g *Grid) {
	if len(s.results) >= s.k {
		return
	}

	if contradiction := Propagate(g, s.rows, s.cols, s.enum); contradiction {
		return
	}

	if g.FullyKnown() {
		if Validate(g, s.rows, s.cols) {
			s.results = append(s.results, g.Clone())
		}
		return
	}

	row, fills := s.chooseBranchRow(g)
	if row < 0 {
		// Every cell is known (handled above) or propagation left no
		// unknown row, which cannot happen once g.FullyKnown() is false.
		return
	}

	snapshot := g.Clone()
	for _, fill := range fills {
		if len(s.results) >= s.k {
			break
		}
		g.SetRow(row, []Cell(fill))
		s.search(g)
		g.CopyFrom(snapshot)
	}
}

// chooseBranchRow picks the most-constrained-variable row: among rows
// still containing Unknown cells, the one with the fewest mask-consistent
// fills, ties broken by ascending row index.
func (s *searcher) chooseBranchRow(g *Grid) (int, []Fill) {
	best := -1
	var bestFills []Fill
	for r := 0; r < g.H; r++ {
		mask := g.Row(r)
		if allKnown(mask) {
			continue
		}
		fills := s.enum.Enumerate(g.W, s.rows[r], mask)
		if best == -1 || len(fills) < len(bestFills) {
			best = r
			bestFills = fills
		}
	}
	return best, bestFills
}
