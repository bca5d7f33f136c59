// Package validate implements `nonogram validate`, the CLI entry point
// for checking a grid against a puzzle's clues.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/nonogram"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/puzzleio"
)

var (
	gridFlag   string
	puzzleFlag string
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val"},
	Short:   "Check a grid against a puzzle's clues",
	Long: `Validate loads a fully-known grid and a puzzle's row/column clues and
reports whether the grid exactly realizes those clues.

Examples:
  nonogram validate --grid grid.json --puzzle puzzle.json
  nonogram validate --grid grid.json --puzzle puzzle.json --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := puzzleio.LoadGrid(gridFlag)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		rows, cols, err := puzzleio.LoadPuzzle(puzzleFlag)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		common.Verbose("Validating %dx%d grid against %d row clues, %d column clues", g.W, g.H, len(rows), len(cols))

		if !nonogram.Validate(g, rows, cols) {
			common.Warning("grid does not satisfy the puzzle's clues")
			return fmt.Errorf("validation failed")
		}
		common.Info("✓ grid satisfies the puzzle's clues")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&gridFlag, "grid", "g", "", "path to the grid file to check (required)")
	validateCmd.Flags().StringVarP(&puzzleFlag, "puzzle", "p", "", "path to the puzzle file to check against (required)")
	_ = validateCmd.MarkFlagRequired("grid")
	_ = validateCmd.MarkFlagRequired("puzzle")
}

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return validateCmd
}
