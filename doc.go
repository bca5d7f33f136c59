// Package main provides the nonogram CLI tool: a solver and adapter for
// nonogram (picross) puzzles.
//
// # Overview
//
// nonogram is a command-line tool for solving row/column clue puzzles,
// nudging ambiguous grids toward a unique solution, and checking or
// visualizing the results. It operates entirely on local JSON files; it
// has no network or database dependency.
//
// # Commands
//
// ## solve
//
// Solve a puzzle's row/column clues via constraint propagation to a
// fixpoint, followed by most-constrained-variable backtracking search,
// capped at a configurable number of solutions (--max-k).
//
//	nonogram solve --puzzle puzzle.json --max-k 5
//	nonogram solve --puzzle puzzle.json --out solution.json --verbose
//
// ## adapt
//
// Load a fully-known grid and repeatedly flip single cells toward one
// of two competing solutions (seeded RNG) until the grid's induced
// clues admit exactly one solution, or the attempt budget is spent.
//
//	nonogram adapt --grid grid.json --seed 42 --max-attempts 500
//
// ## validate
//
// Check that a fully-known grid exactly realizes a puzzle's clues.
//
//	nonogram validate --grid grid.json --puzzle puzzle.json
//
// ## render
//
// Print an ASCII or Unicode visualization of a grid.
//
//	nonogram render --grid grid.json --style ascii --coords
//
// # Architecture
//
//	cmd/            - Cobra command implementations (solve, adapt, validate, render)
//	pkg/common/     - Shared logging (Info/Verbose/Warning)
//	pkg/ui/         - Terminal spinner for long-running solves/adaptations
//	pkg/nonogram/   - Clue/grid types, enumeration, propagation, search, adapter
//	pkg/puzzleio/   - JSON puzzle/grid file I/O
//	pkg/render/     - Grid-to-terminal rendering
//
// # Global Flags
//
//	-v, --verbose              Enable verbose output for debugging
//	-w, --working-dir string   Working directory for puzzle/grid file paths
package main
