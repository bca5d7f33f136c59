// Package puzzleio reads and writes the JSON interchange formats the CLI
// uses to hand puzzles and grids to and from the nonogram core. It never
// reaches into nonogram internals beyond its public clue and grid types.
package puzzleio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/nonogram"
)

// PuzzleFile is the on-disk shape of a puzzle: row/column clues, with an
// optional grid_shape used only to catch mismatched input early.
type PuzzleFile struct {
	Rows      [][]int `json:"rows"`
	Cols      [][]int `json:"cols"`
	GridShape [2]int  `json:"grid_shape,omitempty"`
}

// GridFile is the on-disk shape of a grid: dimensions plus a row-major
// cell string using '#' for Filled, '.' for Empty, and '?' for Unknown
// (the latter only ever appears in partial debug dumps).
type GridFile struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  string `json:"cells"`
}

// LoadPuzzle reads and parses a puzzle file.
func LoadPuzzle(path string) ([]nonogram.Clue, []nonogram.Clue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read puzzle file %s: %w", path, err)
	}
	var pf PuzzleFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("failed to parse puzzle file %s: %w", path, err)
	}

	rows := cluesFromInts(pf.Rows)
	cols := cluesFromInts(pf.Cols)

	if pf.GridShape != [2]int{0, 0} {
		if pf.GridShape[0] != len(rows) || pf.GridShape[1] != len(cols) {
			return nil, nil, fmt.Errorf(
				"puzzle file %s: grid_shape %v does not match clue counts (rows=%d, cols=%d): %w",
				path, pf.GridShape, len(rows), len(cols), nonogram.ErrDimensionMismatch,
			)
		}
	}

	return rows, cols, nil
}

func cluesFromInts(raw [][]int) []nonogram.Clue {
	clues := make([]nonogram.Clue, len(raw))
	for i, r := range raw {
		clues[i] = nonogram.Clue(append([]int(nil), r...))
	}
	return clues
}

// SavePuzzle writes rows/cols to path, refusing to overwrite an existing
// file unless overwrite is true.
func SavePuzzle(path string, rows, cols []nonogram.Clue, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("puzzle file %s already exists (use --overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	pf := PuzzleFile{
		Rows: intsFromClues(rows),
		Cols: intsFromClues(cols),
	}
	data, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write puzzle file %s: %w", path, err)
	}
	return nil
}

func intsFromClues(clues []nonogram.Clue) [][]int {
	out := make([][]int, len(clues))
	for i, c := range clues {
		out[i] = append([]int(nil), []int(c)...)
	}
	return out
}

// LoadGrid reads and parses a grid file into a *nonogram.Grid.
func LoadGrid(path string) (*nonogram.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file %s: %w", path, err)
	}
	var gf GridFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("failed to parse grid file %s: %w", path, err)
	}
	if gf.Width < 0 || gf.Height < 0 {
		return nil, nonogram.ErrNegativeDimension
	}
	if len(gf.Cells) != gf.Width*gf.Height {
		return nil, fmt.Errorf("grid file %s: cells length %d does not match %dx%d: %w",
			path, len(gf.Cells), gf.Width, gf.Height, nonogram.ErrDimensionMismatch)
	}

	g := nonogram.NewGrid(gf.Width, gf.Height, nonogram.Unknown)
	for i, ch := range gf.Cells {
		r, c := i/gf.Width, i%gf.Width
		switch ch {
		case '#':
			g.Set(r, c, nonogram.Filled)
		case '.':
			g.Set(r, c, nonogram.Empty)
		case '?':
			g.Set(r, c, nonogram.Unknown)
		default:
			return nil, fmt.Errorf("grid file %s: invalid cell glyph %q at index %d", path, ch, i)
		}
	}
	return g, nil
}

// SaveGrid writes a grid to path, refusing to overwrite an existing file
// unless overwrite is true.
func SaveGrid(path string, g *nonogram.Grid, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("grid file %s already exists (use --overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	var b strings.Builder
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			switch g.At(r, c) {
			case nonogram.Filled:
				b.WriteByte('#')
			case nonogram.Empty:
				b.WriteByte('.')
			default:
				b.WriteByte('?')
			}
		}
	}

	gf := GridFile{Width: g.W, Height: g.H, Cells: b.String()}
	data, err := json.MarshalIndent(gf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal grid: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write grid file %s: %w", path, err)
	}
	return nil
}
