package nonogram

// Validate re-encodes each row and column of a fully-filled grid and
// compares the result pointwise to rows/cols, returning true only on an
// exact match. It is used as a defense-in-depth check at solution leaves
// in the backtracking search, and is exported so callers (the `validate`
// command, tests) can run the same check independently.
func Validate(g *Grid, rows, cols []Clue) bool {
	if !g.FullyKnown() {
		return false
	}
	gotRows, gotCols := Extract(g)
	if len(gotRows) != len(rows) || len(gotCols) != len(cols) {
		return false
	}
	for i, c := range rows {
		if !gotRows[i].Equal(c) {
			return false
		}
	}
	for i, c := range cols {
		if !gotCols[i].Equal(c) {
			return false
		}
	}
	return true
}
