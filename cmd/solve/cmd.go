package solve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-dorazio/sudoku-go/internal/dispatch"
	"github.com/d-dorazio/sudoku-go/internal/satsolve"
	"github.com/d-dorazio/sudoku-go/pkg/sudoku"
)

func NewSolveCommand() *cobra.Command {
	var (
		workers int
		all     bool
		engine  string
	)

	cmd := &cobra.Command{
		Use:   "solve [path]",
		Short: "Solves puzzles read one per line from a file or stdin",
		Long: `Solves puzzles read one per line from a file or stdin.

Each line is 81 characters, '.' for an open cell and '1'-'9' for a given:
.4....179..2..8.54..6..5..8.8..7.91..5..9..3..19.6..4.3..4..7..57.1..2..928....6.

Independent puzzles are solved in parallel across --workers goroutines.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", args[0])
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return solve(cmd.Context(), path, workers, all, engine)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of puzzles solved in parallel")
	cmd.Flags().BoolVar(&all, "all", false, "enumerate every solution instead of only the first")
	cmd.Flags().StringVar(&engine, "engine", "dfs", "solving engine: dfs (native search) or sat")
	return cmd
}

func solve(ctx context.Context, path string, workers int, all bool, engine string) error {
	var solveOne dispatch.Engine
	switch engine {
	case "dfs":
		solveOne = sudoku.Grid.FirstSolution
	case "sat":
		solveOne = satsolve.Solve
	default:
		return fmt.Errorf("unknown engine %q: expected dfs or sat", engine)
	}
	if all && engine != "dfs" {
		return errors.New("--all requires the dfs engine")
	}

	input := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("error opening puzzle file (%s): %w", path, err)
		}
		defer f.Close()
		input = f
	}

	puzzles, err := readPuzzles(input)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	solved := 0
	if all {
		for i, p := range puzzles {
			n := 0
			for it := p.Solutions(); ; n++ {
				s, ok := it.Next()
				if !ok {
					break
				}
				fmt.Println(s.Line())
			}
			if n == 0 {
				fmt.Fprintf(os.Stderr, "#%d: no solution\n", i)
			} else {
				solved++
			}
		}
	} else {
		for _, res := range dispatch.Solve(ctx, puzzles, workers, solveOne) {
			if res.Solved {
				fmt.Println(res.Solution.Line())
				solved++
			} else {
				fmt.Fprintf(os.Stderr, "#%d: no solution\n", res.Index)
			}
		}
	}
	fmt.Fprintf(os.Stderr, "solved %d/%d puzzles in %s\n", solved, len(puzzles), time.Since(start))

	return nil
}

func readPuzzles(input io.Reader) ([]sudoku.Grid, error) {
	var puzzles []sudoku.Grid
	scanner := bufio.NewScanner(input)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if line == "" {
			continue
		}
		g, err := sudoku.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		puzzles = append(puzzles, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading puzzles: %w", err)
	}
	return puzzles, nil
}
