package sudoku_test

import (
	"testing"

	"github.com/d-dorazio/sudoku-go/pkg/sudoku"
)

// benchLines is a small corpus of solvable puzzles of varying hardness.
var benchLines = []string{
	".4....179..2..8.54..6..5..8.8..7.91..5..9..3..19.6..4.3..4..7..57.1..2..928....6.",
	"8.2.5.7.1..7.8246..1.9.....6....18325.......91843....6.....4.2..9561.3..3.8.9.6.7",
	"........772.3.9..1..87.5.6.5.289.....4.5.1.9.....637.5.3.9.61..2..1.7.539........",
	"2.6....49.37..9...1..7....6...58.9..7.5...8.4..9.62...9....4..1...3..49.41....2.8",
	".25..7..4..1..5.2.7...2.5..5.9..48.............75..6.9..3.7...6.4.1..7..8..2..91.",
	"..1725....8..1...625....13..7....5.....1.6.....9....8..45....297...9..6....6483..",
	".5.2.....3....5.8.96..782......3..2.7.8...1.3.4..8......164..32.7.5....1.....9.5.",
	"8..2...46..79.....1.....5.....5...324.8...7.132...7.....6.....9.....32..28...6..3",
	"..1725....8..1....25....13..7....5.....186.....9....8..45....29....9..6....6483..",
}

func BenchmarkFirstSolution(b *testing.B) {
	puzzles := make([]sudoku.Grid, len(benchLines))
	for i, line := range benchLines {
		g, err := sudoku.Parse(line)
		if err != nil {
			b.Fatal(err)
		}
		puzzles[i] = g
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, g := range puzzles {
			if _, ok := g.FirstSolution(); !ok {
				b.Fatal("expected a solution")
			}
		}
	}
}
