package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-dorazio/sudoku-go/pkg/sudoku"
)

func NewGenerateCommand() *cobra.Command {
	var (
		free  int
		seed  int64
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates puzzles, one line per puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(free, seed, count)
		},
	}

	cmd.Flags().IntVar(&free, "free", 45, "number of open cells per puzzle (0-81)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 picks one from the clock")
	cmd.Flags().IntVar(&count, "count", 1, "number of puzzles to generate")
	return cmd
}

func generate(free int, seed int64, count int) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < count; i++ {
		g, err := sudoku.Generate(rng, free)
		if err != nil {
			return err
		}
		fmt.Println(g.Line())
	}
	return nil
}
