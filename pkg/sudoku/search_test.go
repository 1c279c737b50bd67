package sudoku_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/d-dorazio/sudoku-go/pkg/sudoku"
)

func TestSearch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Search Suite")
}

// clearing the rectangle (0,0) (0,8) (2,0) (2,8) of solvedLine leaves two
// interchangeable completions
const (
	rectanglePuzzle = ".2913674.431785296.7649213." +
		"163248579245917863798563412654321987312879654987654321"
	rectangleAlt = "829136745431785296576492138" +
		"163248579245917863798563412654321987312879654987654321"
)

var _ = Describe("Solutions", func() {
	It("solves a puzzle that needs backtracking", func() {
		g, err := sudoku.Parse(puzzleLine)
		Expect(err).ToNot(HaveOccurred())

		s, ok := g.FirstSolution()
		Expect(ok).To(BeTrue())
		Expect(s.IsSolved()).To(BeTrue())
	})

	It("keeps every given of the puzzle in the solution", func() {
		g, err := sudoku.Parse(puzzleLine)
		Expect(err).ToNot(HaveOccurred())

		s, ok := g.FirstSolution()
		Expect(ok).To(BeTrue())
		for i, ch := range puzzleLine {
			if ch != '.' {
				Expect(s.Line()[i]).To(Equal(byte(ch)), "position %d", i)
			}
		}
	})

	It("returns an already solved grid as is", func() {
		g, err := sudoku.Parse(solvedLine)
		Expect(err).ToNot(HaveOccurred())

		s, ok := g.FirstSolution()
		Expect(ok).To(BeTrue())
		Expect(s).To(Equal(g))
	})

	It("yields nothing for contradictory givens", func() {
		// 5 twice in the first row
		g, err := sudoku.Parse("5...5" + puzzleLine[5:])
		Expect(err).ToNot(HaveOccurred())

		_, ok := g.Solutions().Next()
		Expect(ok).To(BeFalse())
	})

	It("enumerates every completion exactly once", func() {
		g, err := sudoku.Parse(rectanglePuzzle)
		Expect(err).ToNot(HaveOccurred())

		var lines []string
		it := g.Solutions()
		for {
			s, ok := it.Next()
			if !ok {
				break
			}
			Expect(s.IsSolved()).To(BeTrue())
			lines = append(lines, s.Line())
		}
		Expect(lines).To(ConsistOf(solvedLine, rectangleAlt))
	})

	It("stays exhausted after the last solution", func() {
		g, err := sudoku.Parse(solvedLine)
		Expect(err).ToNot(HaveOccurred())

		it := g.Solutions()
		_, ok := it.Next()
		Expect(ok).To(BeTrue())

		_, ok = it.Next()
		Expect(ok).To(BeFalse())
		_, ok = it.Next()
		Expect(ok).To(BeFalse())
	})

	It("enumerates in a deterministic order", func() {
		solveAll := func() []string {
			g, err := sudoku.Parse(rectanglePuzzle)
			Expect(err).ToNot(HaveOccurred())
			var lines []string
			for it := g.Solutions(); ; {
				s, ok := it.Next()
				if !ok {
					return lines
				}
				lines = append(lines, s.Line())
			}
		}

		Expect(solveAll()).To(Equal(solveAll()))
	})
})
