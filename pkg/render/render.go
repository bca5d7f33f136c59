// Package render prints a nonogram grid as an ASCII or Unicode
// visualization.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/eng618/nonogram-core/tools/nonogram-builder/pkg/nonogram"
)

// Style selects the glyph set used to render cells.
type Style string

const (
	StyleASCII   Style = "ascii"
	StyleUnicode Style = "unicode"
)

var filledColor = color.New(color.FgGreen, color.Bold)

// ToWriter prints a visual representation of g to w. When withColor is
// true, Filled cells are printed in bold green.
func ToWriter(w io.Writer, g *nonogram.Grid, style Style, showCoords, withColor bool) {
	if g.W <= 0 || g.H <= 0 {
		fmt.Fprintf(w, "invalid grid size: %dx%d\n", g.W, g.H)
		return
	}

	filledGlyph, emptyGlyph, unknownGlyph := glyphsForStyle(style)

	if showCoords {
		fmt.Fprint(w, "    ")
		for c := 0; c < g.W; c++ {
			fmt.Fprintf(w, "%2d", c%100)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, "   +")
	fmt.Fprint(w, strings.Repeat("--", g.W))
	fmt.Fprintln(w, "+")

	for r := 0; r < g.H; r++ {
		if showCoords {
			fmt.Fprintf(w, "%2d ", r)
		} else {
			fmt.Fprint(w, "   ")
		}
		fmt.Fprint(w, "|")
		for c := 0; c < g.W; c++ {
			glyph := glyphFor(g.At(r, c), filledGlyph, emptyGlyph, unknownGlyph)
			if withColor && g.At(r, c) == nonogram.Filled {
				fmt.Fprint(w, " ")
				filledColor.Fprint(w, glyph)
			} else {
				fmt.Fprintf(w, " %s", glyph)
			}
		}
		fmt.Fprintln(w, " |")
	}

	fmt.Fprint(w, "   +")
	fmt.Fprint(w, strings.Repeat("--", g.W))
	fmt.Fprintln(w, "+")
}

func glyphsForStyle(style Style) (filled, empty, unknown string) {
	if style == StyleASCII {
		return "#", ".", "?"
	}
	return "█", "·", "?"
}

func glyphFor(c nonogram.Cell, filled, empty, unknown string) string {
	switch c {
	case nonogram.Filled:
		return filled
	case nonogram.Empty:
		return empty
	default:
		return unknown
	}
}
