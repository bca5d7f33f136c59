package nonogram

import "testing"

func TestClueFeasible(t *testing.T) {
	cases := []struct {
		name string
		clue Clue
		l    int
		want bool
	}{
		{"empty line always feasible", Clue{0}, 0, true},
		{"empty line on nonzero length", Clue{0}, 5, true},
		{"single run exact fit", Clue{5}, 5, true},
		{"single run too long", Clue{6}, 5, false},
		{"two runs with separator fits exactly", Clue{2, 2}, 5, true},
		{"two runs with separator too long", Clue{2, 2}, 4, false},
		{"three runs", Clue{1, 1, 1}, 5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.clue.Feasible(tc.l); got != tc.want {
				t.Errorf("Feasible(%d) = %v, want %v", tc.l, got, tc.want)
			}
		})
	}
}

func TestExtractClue(t *testing.T) {
	cases := []struct {
		name string
		line []Cell
		want Clue
	}{
		{"all empty", []Cell{Empty, Empty, Empty}, Clue{0}},
		{"single run", []Cell{Empty, Filled, Filled, Empty}, Clue{2}},
		{"multiple runs", []Cell{Filled, Empty, Filled, Filled, Empty, Filled}, Clue{1, 2, 1}},
		{"trailing run", []Cell{Empty, Filled, Filled}, Clue{2}},
		{"leading run", []Cell{Filled, Filled, Empty}, Clue{2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractClue(tc.line)
			if !got.Equal(tc.want) {
				t.Errorf("extractClue(%v) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}
