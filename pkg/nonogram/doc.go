// Package nonogram implements the line-constraint solver and the
// puzzle-adaptation loop that drive a binary grid toward a unique-solution
// nonogram.
//
// A nonogram is a rectangular grid where each row and column carries an
// ordered sequence of positive integers (its clues), each denoting the
// length of a maximal contiguous run of filled cells. The package exposes
// two entry points: Solve, which enumerates up to K distinct solutions for
// a set of row/column clues, and Adapter.Run, which mutates a grid until
// its induced clues admit exactly one solution or a budget is exhausted.
package nonogram
