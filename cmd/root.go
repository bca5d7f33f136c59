package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-core/tools/nonogram-builder/cmd/adapt"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/cmd/render"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/cmd/solve"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/cmd/validate"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/common"
)

var (
	// Global flags
	verbose    bool
	workingDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nonogram",
	Short: "Nonogram puzzle solver and adapter",
	Long: `nonogram is a CLI tool for solving and authoring nonogram (picross)
puzzles.

It provides commands for:
  - Solving a puzzle's row/column clues via constraint propagation and
    backtracking search
  - Adapting an ambiguous grid toward a uniquely-solvable one
  - Validating a grid against a puzzle's clues
  - Rendering a grid as an ASCII/Unicode visualization`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return err
			}
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for puzzle/grid file paths (default: current directory)")

	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(adapt.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
}
