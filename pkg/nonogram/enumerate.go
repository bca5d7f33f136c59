package nonogram

import "fmt"

// Fill is a concrete realization of a clue sequence: a line of Empty/Filled
// cells encoding contiguous runs with at least one separating Empty cell
// between consecutive runs.
type Fill []Cell

// enumerator produces all fills of a given length realizing a clue,
// optionally filtered by a partial mask. Unfiltered enumerations are
// cached by (length, clue) for the lifetime of the enumerator, which a
// single top-level Solve call owns exclusively. That bounds the cache to
// one solve's working set rather than growing without limit across many
// puzzles.
type enumerator struct {
	cache map[string][]Fill
}

func newEnumerator() *enumerator {
	return &enumerator{cache: make(map[string][]Fill)}
}

// Enumerate returns every length-l fill realizing clue that is consistent
// with mask, where mask may be nil (no constraint) or a slice of length l
// whose non-Unknown entries pin a cell's value.
func (e *enumerator) Enumerate(l int, clue Clue, mask []Cell) []Fill {
	all := e.unfiltered(l, clue)
	if mask == nil {
		return all
	}
	out := make([]Fill, 0, len(all))
	for _, f := range all {
		if consistentWithMask(f, mask) {
			out = append(out, f)
		}
	}
	return out
}

// Count returns len(Enumerate(l, clue, mask)) without building the
// filtered slice.
func (e *enumerator) Count(l int, clue Clue, mask []Cell) int {
	all := e.unfiltered(l, clue)
	if mask == nil {
		return len(all)
	}
	n := 0
	for _, f := range all {
		if consistentWithMask(f, mask) {
			n++
		}
	}
	return n
}

func (e *enumerator) unfiltered(l int, clue Clue) []Fill {
	key := fmt.Sprintf("%d|%s", l, clue.key())
	if cached, ok := e.cache[key]; ok {
		return cached
	}

	var fills []Fill
	switch {
	case clue.IsEmptyLine():
		if l >= 0 {
			empty := make(Fill, l)
			for i := range empty {
				empty[i] = Empty
			}
			fills = []Fill{empty}
		}
	case clue.Feasible(l):
		fills = generateFills(l, clue)
	}

	e.cache[key] = fills
	return fills
}

// generateFills performs the recursive placement: at each step pick a
// start position for the next run within the window left by the runs
// already placed and the space the remaining runs will need, then
// recurse.
func generateFills(l int, clue Clue) []Fill {
	var results []Fill
	buf := make(Fill, l)
	for i := range buf {
		buf[i] = Empty
	}

	n := len(clue)
	// tailSpace[i] is the number of cells consumed by runs clue[i:],
	// counting one separator before each of them (including the first,
	// which must be kept apart from the run placed before it).
	tailSpace := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		tailSpace[i] = tailSpace[i+1] + clue[i] + 1
	}

	var place func(idx, pos int)
	place = func(idx, pos int) {
		if idx == n {
			out := make(Fill, l)
			copy(out, buf)
			results = append(results, out)
			return
		}
		run := clue[idx]
		remainingAfter := tailSpace[idx+1] // space needed by runs after idx
		maxStart := l - run - remainingAfter
		for s := pos; s <= maxStart; s++ {
			for i := s; i < s+run; i++ {
				buf[i] = Filled
			}
			place(idx+1, s+run+1)
			for i := s; i < s+run; i++ {
				buf[i] = Empty
			}
		}
	}
	place(0, 0)
	return results
}

func consistentWithMask(f Fill, mask []Cell) bool {
	for i, m := range mask {
		if m != Unknown && m != f[i] {
			return false
		}
	}
	return true
}
