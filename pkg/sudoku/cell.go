package sudoku

import (
	"fmt"
	"math/bits"
)

// Cell is the set of digits still possible for one grid position. Bit d is
// set iff digit d is a candidate; bit 0 and bits above 9 are never set. A
// Cell is a plain value: transformations return new Cells and never touch
// shared state, which is what lets search branches diverge without copying
// anything but the Grid itself.
type Cell uint16

const fullMask Cell = 0b1111111110

// NewCell returns the singleton candidate set {d}. Digits outside [1,9] are
// rejected.
func NewCell(d int) (Cell, error) {
	if d < 1 || d > 9 {
		return 0, fmt.Errorf("digit %d out of range [1,9]", d)
	}
	return 1 << d, nil
}

// FullCell returns the fully open candidate set {1,…,9}.
func FullCell() Cell {
	return fullMask
}

// Len returns the number of candidates.
func (c Cell) Len() int {
	return bits.OnesCount16(uint16(c))
}

// IsEmpty reports whether no candidate remains, i.e. the position is
// contradictory.
func (c Cell) IsEmpty() bool {
	return c == 0
}

// Has reports whether d is still a candidate.
func (c Cell) Has(d int) bool {
	return c&(1<<d) != 0
}

// Without returns the set with d removed. Removing an absent digit is a
// no-op.
func (c Cell) Without(d int) Cell {
	return c &^ (1 << d)
}

// MaxDigit returns the highest-numbered candidate. Branching picks this
// digit, so the scan direction is part of the solver's deterministic branch
// order and must not change. The cell must not be empty.
func (c Cell) MaxDigit() int {
	return 15 - bits.LeadingZeros16(uint16(c))
}
