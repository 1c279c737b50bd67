package sudoku

// Solutions lazily enumerates the solved completions of a starting Grid in a
// fixed depth-first order. The enumerator owns an explicit stack of pending
// grids instead of recursing, so search depth is bounded by the stack slice
// and a caller can stop pulling at any point. It is forward-only: every Next
// consumes state permanently.
type Solutions struct {
	pending []Grid
}

// Solutions returns an enumerator over every solved grid reachable from g by
// this search order. The sequence is finite and may be empty.
func (g Grid) Solutions() *Solutions {
	return &Solutions{pending: []Grid{g}}
}

// Next produces the next solved grid, or ok=false once the search space is
// exhausted. Contradictory branches are pruned silently; they never surface
// to the caller.
func (it *Solutions) Next() (Grid, bool) {
	for len(it.pending) > 0 {
		g := it.pending[len(it.pending)-1]
		it.pending = it.pending[:len(it.pending)-1]

		g, ok := propagate(g)
		if !ok {
			continue
		}
		if g.IsSolved() {
			return g, true
		}

		r, c := branchCell(g)
		d := g.At(r, c).MaxDigit()

		// Push the exclusion first so the forced guess is explored first.
		it.pending = append(it.pending, g.with(r, c, g.At(r, c).Without(d)))
		it.pending = append(it.pending, g.with(r, c, Cell(1)<<d))
	}
	return Grid{}, false
}

// branchCell picks the open cell with the fewest candidates, first in
// row-major order on ties, which keeps the branching factor minimal. The
// grid must have at least one non-singleton cell.
func branchCell(g Grid) (int, int) {
	bestR, bestC, bestLen := -1, -1, 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if n := g.At(r, c).Len(); n > 1 && n < bestLen {
				bestR, bestC, bestLen = r, c, n
			}
		}
	}
	return bestR, bestC
}

// FirstSolution returns the first solved grid in enumeration order, or
// ok=false when the puzzle has no solution. Unsolvable input is an ordinary
// outcome, not an error.
func (g Grid) FirstSolution() (Grid, bool) {
	return g.Solutions().Next()
}
