package nonogram

// Extract run-length-encodes a fully-filled grid into its row and column
// clue sequences. Extraction is total and O(H*W); it does not validate
// that the grid has a unique solution, which is the caller's concern.
func Extract(g *Grid) (rows, cols []Clue) {
	rows = make([]Clue, g.H)
	for r := 0; r < g.H; r++ {
		rows[r] = extractClue(g.Row(r))
	}
	cols = make([]Clue, g.W)
	for c := 0; c < g.W; c++ {
		cols[c] = extractClue(g.Col(c))
	}
	return rows, cols
}

// TrimGrid removes leading/trailing rows and columns whose cells are all
// Empty. A grid that is entirely empty is returned unchanged, since
// there is no non-empty content to anchor the trim to. TrimGrid never
// mutates g; it returns a new Grid of the (possibly smaller) shape.
func TrimGrid(g *Grid) *Grid {
	top, bottom := 0, g.H
	for top < bottom && rowIsEmpty(g, top) {
		top++
	}
	for bottom > top && rowIsEmpty(g, bottom-1) {
		bottom--
	}
	if top >= bottom {
		return g.Clone()
	}

	left, right := 0, g.W
	for left < right && colIsEmpty(g, left, top, bottom) {
		left++
	}
	for right > left && colIsEmpty(g, right-1, top, bottom) {
		right--
	}

	newH := bottom - top
	newW := right - left
	out := NewGrid(newW, newH, Empty)
	for r := 0; r < newH; r++ {
		for c := 0; c < newW; c++ {
			out.Set(r, c, g.At(top+r, left+c))
		}
	}
	return out
}

func rowIsEmpty(g *Grid, r int) bool {
	for c := 0; c < g.W; c++ {
		if g.At(r, c) != Empty {
			return false
		}
	}
	return true
}

func colIsEmpty(g *Grid, c, topRow, bottomRow int) bool {
	for r := topRow; r < bottomRow; r++ {
		if g.At(r, c) != Empty {
			return false
		}
	}
	return true
}
