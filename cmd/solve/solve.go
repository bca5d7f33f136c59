// Package solve implements `nonogram solve`, the CLI entry point for the
// search over a clue puzzle.
package solve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/nonogram"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/puzzleio"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/render"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/ui"
)

var (
	puzzlePath string
	outPath    string
	maxK       int
	overwrite  bool
	style      string
)

// solveCmd represents the solve command.
var solveCmd = &cobra.Command{
	Use:     "solve",
	Aliases: []string{"s"},
	Short:   "Solve a nonogram puzzle from its clues",
	Long: `Solve reads row/column clues from a puzzle file and searches for up
to K solutions using constraint propagation plus backtracking.

A puzzle with zero solutions is unsolvable; a puzzle with more than one
is ambiguous. Use 'nonogram adapt' to force an ambiguous puzzle toward
a unique solution.

Examples:
  nonogram solve --puzzle puzzle.json
  nonogram solve --puzzle puzzle.json --max-k 5 --verbose
  nonogram solve --puzzle puzzle.json --out solution.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Loading puzzle from %s", puzzlePath)
		rows, cols, err := puzzleio.LoadPuzzle(puzzlePath)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		common.Verbose("Loaded %d row clues, %d column clues", len(rows), len(cols))

		spin := ui.NewSpinner("searching for solutions")
		spin.Start()
		solutions, err := nonogram.Solve(rows, cols, maxK)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		switch len(solutions) {
		case 0:
			common.Warning("puzzle has no solutions")
			return fmt.Errorf("unsolvable puzzle")
		case 1:
			common.Info("puzzle has a unique solution")
		default:
			common.Info("puzzle is ambiguous: found %d of at most %d solutions", len(solutions), maxK)
		}

		for i, g := range solutions {
			common.Verbose("solution %d:", i+1)
			if common.VerboseEnabled {
				render.ToWriter(cmd.OutOrStdout(), g, render.Style(style), false, false)
			}
		}

		if outPath != "" {
			if err := puzzleio.SaveGrid(outPath, solutions[0], overwrite); err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			common.Info("wrote first solution to %s", outPath)
		}

		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&puzzlePath, "puzzle", "p", "", "path to the puzzle file (required)")
	solveCmd.Flags().StringVarP(&outPath, "out", "o", "", "path to write the first solution grid (optional)")
	solveCmd.Flags().IntVarP(&maxK, "max-k", "k", 2, "stop search after finding this many solutions")
	solveCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite an existing output file")
	solveCmd.Flags().StringVar(&style, "style", "ascii", "render style for verbose solution dumps (ascii|unicode)")
	_ = solveCmd.MarkFlagRequired("puzzle")
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	return solveCmd
}
