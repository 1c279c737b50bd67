package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-dorazio/sudoku-go/pkg/sudoku"
)

func TestNewCell(t *testing.T) {
	for _, d := range []int{-1, 0, 10, 42} {
		_, err := sudoku.NewCell(d)
		assert.Error(t, err, "digit %d", d)
	}

	for d := 1; d <= 9; d++ {
		c, err := sudoku.NewCell(d)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
		assert.True(t, c.Has(d))
		assert.Equal(t, d, c.MaxDigit())
	}
}

func TestFullCell(t *testing.T) {
	c := sudoku.FullCell()
	assert.Equal(t, 9, c.Len())
	assert.False(t, c.IsEmpty())
	for d := 1; d <= 9; d++ {
		assert.True(t, c.Has(d))
	}
}

func TestCellWithout(t *testing.T) {
	c := sudoku.FullCell().Without(4)
	assert.Equal(t, 8, c.Len())
	assert.False(t, c.Has(4))

	// removing an absent digit changes nothing
	assert.Equal(t, c, c.Without(4))

	for d := 1; d <= 9; d++ {
		c = c.Without(d)
	}
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
}

func TestCellMaxDigit(t *testing.T) {
	type tc struct {
		Name    string
		Cell    sudoku.Cell
		Highest int
	}

	three, err := sudoku.NewCell(3)
	require.NoError(t, err)

	for _, tt := range []tc{
		{Name: "full domain", Cell: sudoku.FullCell(), Highest: 9},
		{Name: "nine removed", Cell: sudoku.FullCell().Without(9), Highest: 8},
		{Name: "only extremes", Cell: sudoku.FullCell().Without(2).Without(3).Without(4).Without(5).Without(6).Without(7).Without(8), Highest: 9},
		{Name: "singleton", Cell: three, Highest: 3},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Highest, tt.Cell.MaxDigit())
		})
	}
}
