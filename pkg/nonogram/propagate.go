package nonogram

// Propagate alternates row and column passes over g, intersecting the
// enumerated fills for each still-unknown line to tighten its cells,
// until no pass pins a new cell (fixpoint) or a line admits no fills
// (contradiction). A line that is already fully known is not enumerated;
// it is a contradiction when its run-length encoding differs from its
// clue. It reports whether a contradiction was hit; g is mutated in place
// either way.
func Propagate(g *Grid, rows, cols []Clue, enum *enumerator) bool {
	for {
		changedAny := false

		for r := 0; r < g.H; r++ {
			mask := g.Row(r)
			if allKnown(mask) {
				if !extractClue(mask).Equal(rows[r]) {
					return true
				}
				continue
			}
			newMask, changed, contradiction := enum.propagateLine(g.W, rows[r], mask)
			if contradiction {
				return true
			}
			if changed {
				g.SetRow(r, newMask)
				changedAny = true
			}
		}

		for c := 0; c < g.W; c++ {
			mask := g.Col(c)
			if allKnown(mask) {
				if !extractClue(mask).Equal(cols[c]) {
					return true
				}
				continue
			}
			newMask, changed, contradiction := enum.propagateLine(g.H, cols[c], mask)
			if contradiction {
				return true
			}
			if changed {
				g.SetCol(c, newMask)
				changedAny = true
			}
		}

		if !changedAny {
			return false
		}
	}
}

// propagateLine enumerates the fills consistent with mask and returns the
// cell-wise intersection merged into mask: any position where all
// surviving fills agree is pinned, others stay Unknown.
func (e *enumerator) propagateLine(length int, clue Clue, mask []Cell) (newMask []Cell, changed, contradiction bool) {
	fills := e.Enumerate(length, clue, mask)
	if len(fills) == 0 {
		return mask, false, true
	}

	inter := intersectFills(fills)
	out := make([]Cell, length)
	copy(out, mask)
	for i := 0; i < length; i++ {
		if out[i] == Unknown && inter[i] != Unknown {
			out[i] = inter[i]
			changed = true
		}
	}
	return out, changed, false
}

// intersectFills returns, per position, the common value across every
// fill in fills, or Unknown where they disagree. It short-circuits once
// every position has already diverged, since no further fill can narrow
// the result any further.
func intersectFills(fills []Fill) []Cell {
	l := len(fills[0])
	result := make([]Cell, l)
	copy(result, fills[0])

	live := l
	for _, f := range fills[1:] {
		if live == 0 {
			break
		}
		for i := 0; i < l; i++ {
			if result[i] == Unknown {
				continue
			}
			if f[i] != result[i] {
				result[i] = Unknown
				live--
			}
		}
	}
	return result
}

func allKnown(cells []Cell) bool {
	for _, c := range cells {
		if c == Unknown {
			return false
		}
	}
	return true
}
