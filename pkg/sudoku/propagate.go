package sudoku

type pos struct {
	r, c int
}

// groups lists the positions of every constraint group: 9 rows, then 9
// columns, then 9 boxes. Hidden-single detection walks all 27.
var groups = buildGroups()

func buildGroups() [27][9]pos {
	var out [27][9]pos
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			out[i][j] = pos{i, j}
			out[9+i][j] = pos{j, i}
			out[18+i][j] = pos{i/3*3 + j/3, i%3*3 + j%3}
		}
	}
	return out
}

// propagate runs elimination and hidden-single deduction to a fixpoint.
// It returns the settled Grid, or ok=false when some cell's domain empties,
// which means the grid has no completion and the branch is dead.
func propagate(g Grid) (Grid, bool) {
	for {
		next, changed, ok := eliminate(g)
		if !ok {
			return Grid{}, false
		}
		next, forced := assignHiddenSingles(next)
		if !changed && !forced {
			return next, true
		}
		g = next
	}
}

// eliminate removes every fixed digit from the other cells of its row,
// column, and box. Fixed cells are read from the input grid, so a cell that
// becomes a singleton mid-sweep only starts eliminating on the next round.
// Emptying any domain aborts the whole sweep with ok=false.
func eliminate(g Grid) (out Grid, changed bool, ok bool) {
	out = g
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := g.At(r, c)
			switch cell.Len() {
			case 0:
				return Grid{}, false, false
			case 1:
				d := cell.MaxDigit()

				removeAt := func(pr, pc int) bool {
					if pr == r && pc == c {
						return true
					}
					p := out.At(pr, pc)
					if !p.Has(d) {
						return true
					}
					p = p.Without(d)
					if p.IsEmpty() {
						return false
					}
					out = out.with(pr, pc, p)
					changed = true
					return true
				}

				br, bc := boxOrigin(r, c)
				for i := 0; i < 9; i++ {
					if !removeAt(r, i) || !removeAt(i, c) || !removeAt(br+i/3, bc+i%3) {
						return Grid{}, false, false
					}
				}
			}
		}
	}
	return out, changed, true
}

// assignHiddenSingles forces, for every group and digit, the unique cell
// still able to take that digit. Digits already placed in the group are
// skipped, and nothing happens when zero or several cells carry the digit.
func assignHiddenSingles(g Grid) (Grid, bool) {
	changed := false
	for gi := range groups {
		for d := 1; d <= 9; d++ {
			candidates := 0
			var at pos
			placed := false
			for _, p := range groups[gi] {
				cell := g.At(p.r, p.c)
				if cell.Len() == 1 && cell.MaxDigit() == d {
					placed = true
					break
				}
				if cell.Has(d) {
					candidates++
					at = p
				}
			}
			if placed || candidates != 1 {
				continue
			}
			g = g.with(at.r, at.c, Cell(1)<<d)
			changed = true
		}
	}
	return g, changed
}
