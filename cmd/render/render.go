// Package render implements `nonogram render`, the CLI entry point for
// ASCII/Unicode grid visualization.
package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/puzzleio"
	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/render"
)

var (
	gridFlag   string
	styleFlag  string
	coordsFlag bool
	colorFlag  bool
)

// RenderCmd renders a grid to the terminal for visual inspection.
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a grid to the terminal (ASCII/Unicode)",
	Long: `Render a grid file to the terminal for quick visual inspection.

Examples:
  nonogram render --grid grid.json
  nonogram render --grid grid.json --style ascii --coords
  nonogram render --grid grid.json --color
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if gridFlag == "" {
			return fmt.Errorf("please provide --grid to render a grid")
		}

		g, err := puzzleio.LoadGrid(gridFlag)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		common.Verbose("Rendering %dx%d grid in %s style", g.W, g.H, styleFlag)

		render.ToWriter(cmd.OutOrStdout(), g, render.Style(styleFlag), coordsFlag, colorFlag)
		return nil
	},
}

func init() {
	RenderCmd.Flags().StringVarP(&gridFlag, "grid", "g", "", "path to a grid JSON file to render")
	RenderCmd.Flags().StringVarP(&styleFlag, "style", "s", "unicode", "render style: ascii or unicode")
	RenderCmd.Flags().BoolVarP(&coordsFlag, "coords", "c", false, "show axis coordinates")
	RenderCmd.Flags().BoolVar(&colorFlag, "color", false, "colorize filled cells")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return RenderCmd
}
