// Package dispatch fans a batch of independent puzzles out over a fixed pool
// of workers. Grids are immutable values, so the workers share nothing; each
// puzzle is one unit of work and results keep the input order.
package dispatch

import (
	"context"
	"runtime"
	"sync"

	"github.com/d-dorazio/sudoku-go/pkg/sudoku"
)

// Engine solves one puzzle, reporting ok=false for unsolvable input.
type Engine func(sudoku.Grid) (sudoku.Grid, bool)

// Result is the outcome for the puzzle at Index in the input batch.
type Result struct {
	Index    int
	Puzzle   sudoku.Grid
	Solution sudoku.Grid
	Solved   bool
}

// Solve runs every puzzle through engine on up to workers goroutines and
// returns results indexed like the input. Workers stop picking up new
// puzzles once ctx is cancelled; puzzles never started are reported
// unsolved.
func Solve(ctx context.Context, puzzles []sudoku.Grid, workers int, engine Engine) []Result {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(puzzles) {
		workers = len(puzzles)
	}

	results := make([]Result, len(puzzles))
	for i, p := range puzzles {
		results[i] = Result{Index: i, Puzzle: p}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				solution, ok := engine(results[i].Puzzle)
				results[i].Solution = solution
				results[i].Solved = ok
			}
		}()
	}

	for i := range puzzles {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results
		}
	}
	close(jobs)
	wg.Wait()
	return results
}
