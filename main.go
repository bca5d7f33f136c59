// Command nonogram solves, adapts, validates, and renders nonogram
// puzzles. See cmd/root.go for the full command tree.
package main

import "github.com/eng618/nonogram-core/tools/nonogram-builder/cmd"

func main() {
	cmd.Execute()
}
