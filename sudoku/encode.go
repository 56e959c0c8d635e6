package sudoku

import "github.com/katalvlaran/dlx"

// The four constraint families, 81 columns each: cell, row, column, box.
const (
	cellBase = 0
	rowBase  = 81
	colBase  = 162
	boxBase  = 243

	totalConstraints = 324
)

// Placement is one candidate digit for one cell — the row key the
// engine carries into solutions.
type Placement struct {
	Row, Col int
	Digit    int8
}

// problem implements dlx.Problem for one grid.
type problem struct {
	grid Grid
}

// NewProblem returns the 324-constraint exact-cover encoding of g.
// The caller is expected to have validated g; conflicting givens
// simply produce an unsatisfiable matrix.
func NewProblem(g Grid) dlx.Problem[Placement] {
	return problem{grid: g}
}

func (p problem) Constraints() int         { return totalConstraints }
func (p problem) OptionalConstraints() int { return 0 }

// GenerateRows emits one row per admissible placement, cell-major then
// digit-ascending. Givens emit exactly one row; open cells emit a row
// for every digit not yet used in the cell's row, column, or box.
func (p problem) GenerateRows(emit func(id Placement, columns []int)) {
	var rows, cols, boxes [9]DigitSet
	for r := range p.grid {
		for c := range p.grid[r] {
			if d := p.grid[r][c]; d != 0 {
				rows[r].Add(d)
				cols[c].Add(d)
				boxes[boxIndex(r, c)].Add(d)
			}
		}
	}

	for r := range p.grid {
		for c := range p.grid[r] {
			if d := p.grid[r][c]; d != 0 {
				emit(Placement{Row: r, Col: c, Digit: d}, constraintColumns(r, c, d))

				continue
			}
			b := boxIndex(r, c)
			var d int8
			for d = 1; d <= 9; d++ {
				if rows[r].Has(d) || cols[c].Has(d) || boxes[b].Has(d) {
					continue
				}
				emit(Placement{Row: r, Col: c, Digit: d}, constraintColumns(r, c, d))
			}
		}
	}
}

// constraintColumns maps a placement to its four constraint columns.
func constraintColumns(r, c int, d int8) []int {
	return []int{
		cellBase + r*9 + c,
		rowBase + r*9 + int(d) - 1,
		colBase + c*9 + int(d) - 1,
		boxBase + boxIndex(r, c)*9 + int(d) - 1,
	}
}

// Solve completes g. It returns the solved grid and true, or the input
// and false when the givens conflict or no completion exists.
func Solve(g Grid) (Grid, bool) {
	if g.Validate() != nil {
		return g, false
	}

	sol, err := dlx.SolveFirst(NewProblem(g), dlx.DefaultOptions())
	if err != nil || sol == nil {
		return g, false
	}

	out := g
	for _, pl := range sol.Rows {
		out[pl.Row][pl.Col] = pl.Digit
	}

	return out, true
}

// Count enumerates completions of g, stopping at limit. A limit ≤ 0 or
// conflicting givens count zero. Count(g, 2) is the uniqueness probe.
func Count(g Grid, limit int) int {
	if g.Validate() != nil {
		return 0
	}

	sols, err := dlx.SolveMany(NewProblem(g), dlx.DefaultOptions(), limit)
	if err != nil {
		return 0
	}

	return len(sols)
}
