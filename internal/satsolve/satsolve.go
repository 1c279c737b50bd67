// Package satsolve solves 9×9 grids by handing them to the gini SAT solver
// instead of the native propagation search. One boolean variable states that
// a digit sits in a cell; the usual row, column, and box exclusivity rules
// become pairwise conflict clauses. The encoding follows gini's own sudoku
// example.
package satsolve

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/d-dorazio/sudoku-go/pkg/sudoku"
)

// lit maps the triple (row, col, digit) to a positive literal. Variables are
// 1-based in gini, and digits already start at 1.
func lit(row, col, digit int) z.Lit {
	return z.Var(row*81 + col*9 + digit).Pos()
}

// Solve returns a solved completion of g, or ok=false when the clues are
// contradictory. It yields a single model; enumerating alternatives is the
// native search's job.
func Solve(g sudoku.Grid) (sudoku.Grid, bool) {
	s := gini.New()

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			cell := g.At(row, col)

			// every cell holds a digit
			for d := 1; d <= 9; d++ {
				s.Add(lit(row, col, d))
			}
			s.Add(0)

			// and no more than one
			for a := 1; a <= 9; a++ {
				for b := a + 1; b <= 9; b++ {
					s.Add(lit(row, col, a).Not())
					s.Add(lit(row, col, b).Not())
					s.Add(0)
				}
			}

			// digits the input has already ruled out stay ruled out; for a
			// given this pins the cell to its clue
			for d := 1; d <= 9; d++ {
				if !cell.Has(d) {
					s.Add(lit(row, col, d).Not())
					s.Add(0)
				}
			}
		}
	}

	// a digit appears at most once per row and per column
	for d := 1; d <= 9; d++ {
		for i := 0; i < 9; i++ {
			for a := 0; a < 9; a++ {
				for b := a + 1; b < 9; b++ {
					s.Add(lit(i, a, d).Not())
					s.Add(lit(i, b, d).Not())
					s.Add(0)

					s.Add(lit(a, i, d).Not())
					s.Add(lit(b, i, d).Not())
					s.Add(0)
				}
			}
		}
	}

	// and at most once per box
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			for d := 1; d <= 9; d++ {
				for a := 0; a < 9; a++ {
					for b := a + 1; b < 9; b++ {
						s.Add(lit(br+a/3, bc+a%3, d).Not())
						s.Add(lit(br+b/3, bc+b%3, d).Not())
						s.Add(0)
					}
				}
			}
		}
	}

	if s.Solve() != 1 {
		return sudoku.Grid{}, false
	}

	line := make([]byte, 81)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for d := 1; d <= 9; d++ {
				if s.Value(lit(row, col, d)) {
					line[row*9+col] = byte('0' + d)
					break
				}
			}
		}
	}

	out, err := sudoku.Parse(string(line))
	if err != nil {
		return sudoku.Grid{}, false
	}
	return out, true
}
