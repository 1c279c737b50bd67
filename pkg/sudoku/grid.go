package sudoku

import (
	"errors"
)

var (
	// ErrLineLength is returned by Parse for input that is not exactly 81
	// characters long.
	ErrLineLength = errors.New("puzzle line must be exactly 81 characters")
	// ErrBadCharacter is returned by Parse for any character other than '.'
	// or a digit '1' through '9'.
	ErrBadCharacter = errors.New("puzzle line may only contain '.' and digits 1-9")
)

// Grid is a 9×9 arrangement of Cells, row-major. It is a value type:
// assignment copies the whole board, and every transformation in this
// package derives a fresh Grid instead of mutating one in place, so grids on
// different search branches never share state.
type Grid struct {
	cells [81]Cell
}

// Parse builds a Grid from the 81-character line format: '.' for an open
// cell, '1'-'9' for a given. Anything else, including '0' and lines of the
// wrong length, fails with no partial result.
func Parse(line string) (Grid, error) {
	var g Grid
	if len(line) != 81 {
		return Grid{}, ErrLineLength
	}
	for i := 0; i < 81; i++ {
		switch ch := line[i]; {
		case ch == '.':
			g.cells[i] = FullCell()
		case ch >= '1' && ch <= '9':
			cell, err := NewCell(int(ch - '0'))
			if err != nil {
				return Grid{}, err
			}
			g.cells[i] = cell
		default:
			return Grid{}, ErrBadCharacter
		}
	}
	return g, nil
}

// Line renders the Grid in the same format Parse reads: one character per
// cell, row-major, singleton cells as their digit and everything else as '.'.
func (g Grid) Line() string {
	out := make([]byte, 81)
	for i, c := range g.cells {
		if c.Len() == 1 {
			out[i] = byte('0' + c.MaxDigit())
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// At returns the Cell at row r, column c.
func (g Grid) At(r, c int) Cell {
	return g.cells[r*9+c]
}

// with derives a new Grid with the cell at (r, c) replaced.
func (g Grid) with(r, c int, cell Cell) Grid {
	g.cells[r*9+c] = cell
	return g
}

// Row returns the 9 cells of row r in column order.
func (g Grid) Row(r int) [9]Cell {
	var out [9]Cell
	copy(out[:], g.cells[r*9:r*9+9])
	return out
}

// Col returns the 9 cells of column c in row order.
func (g Grid) Col(c int) [9]Cell {
	var out [9]Cell
	for r := 0; r < 9; r++ {
		out[r] = g.cells[r*9+c]
	}
	return out
}

// boxOrigin returns the top-left coordinate of the 3×3 box containing (r, c).
func boxOrigin(r, c int) (int, int) {
	return r - r%3, c - c%3
}

// Box returns the 9 cells of the 3×3 box containing (r, c), row-major within
// the box.
func (g Grid) Box(r, c int) [9]Cell {
	br, bc := boxOrigin(r, c)
	var out [9]Cell
	for i := 0; i < 9; i++ {
		out[i] = g.cells[(br+i/3)*9+bc+i%3]
	}
	return out
}

// IsSolved reports whether every cell is a singleton and no row, column, or
// box repeats a digit. The duplicate check removes each of a group's nine
// digits from a full domain; only a permutation of 1-9 empties it.
func (g Grid) IsSolved() bool {
	for _, c := range g.cells {
		if c.Len() != 1 {
			return false
		}
	}

	noDuplicates := func(group [9]Cell) bool {
		digits := FullCell()
		for _, c := range group {
			digits = digits.Without(c.MaxDigit())
		}
		return digits.IsEmpty()
	}

	for i := 0; i < 9; i++ {
		if !noDuplicates(g.Row(i)) {
			return false
		}
		if !noDuplicates(g.Col(i)) {
			return false
		}
		if !noDuplicates(g.Box(i/3*3, i%3*3)) {
			return false
		}
	}
	return true
}
