package root

import (
	"github.com/spf13/cobra"

	"github.com/d-dorazio/sudoku-go/cmd/generate"

	"github.com/d-dorazio/sudoku-go/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solves and generates 9x9 sudoku puzzles",
		Long: `A 9x9 sudoku solver and generator built on constraint propagation and
depth-first search, with an alternative SAT-based solving engine.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(generate.NewGenerateCommand())

	return rootCmd
}
