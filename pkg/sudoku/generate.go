package sudoku

import (
	"errors"
	"math/rand"
)

// ErrFreeCells is returned by Generate when the requested number of free
// cells does not fit on a 9×9 board.
var ErrFreeCells = errors.New("free cell count must be between 0 and 81")

// Generate produces a puzzle with exactly freeCells open positions. It
// completes the fully open grid through the regular search, then clears a
// random sample of distinct positions drawn from rng. The caller owns the
// random source, so equal seeds yield equal puzzles. Solution uniqueness is
// not checked.
func Generate(rng *rand.Rand, freeCells int) (Grid, error) {
	if freeCells < 0 || freeCells > 81 {
		return Grid{}, ErrFreeCells
	}

	var open Grid
	for i := range open.cells {
		open.cells[i] = FullCell()
	}

	solved, ok := open.FirstSolution()
	if !ok {
		// The empty board always has completions.
		return Grid{}, errors.New("internal error: open grid not solvable")
	}

	for _, i := range rng.Perm(81)[:freeCells] {
		solved.cells[i] = FullCell()
	}
	return solved, nil
}
