package queens

import (
	"errors"

	"github.com/katalvlaran/dlx"
)

// ErrBoardSize indicates a board dimension below 1.
var ErrBoardSize = errors.New("queens: board size must be at least 1")

// Square identifies one board square; it is the row key carried through
// the engine into solutions.
type Square struct {
	Rank, File int
}

// problem implements dlx.Problem for an n×n board.
type problem struct {
	n int
}

// Constraints: one per rank plus one per file.
func (p problem) Constraints() int { return 2 * p.n }

// OptionalConstraints: 2n-1 diagonals plus 2n-1 anti-diagonals.
func (p problem) OptionalConstraints() int { return 4*p.n - 2 }

// GenerateRows emits one row per square, rank-major, so solution order
// is deterministic.
func (p problem) GenerateRows(emit func(id Square, columns []int)) {
	n := p.n
	var r, f int
	for r = 0; r < n; r++ {
		for f = 0; f < n; f++ {
			// Rank, file, then the optional diagonal pair. Diagonals are
			// indexed by r+f, anti-diagonals by r-f shifted non-negative.
			diag := 2*n + r + f
			anti := 2*n + (2*n - 1) + (r - f + n - 1)
			emit(Square{Rank: r, File: f}, []int{r, n + f, diag, anti})
		}
	}
}

// NewProblem returns the exact-cover encoding of the n-queens puzzle.
func NewProblem(n int) (dlx.Problem[Square], error) {
	if n < 1 {
		return nil, ErrBoardSize
	}

	return problem{n: n}, nil
}

// Count enumerates every placement of n non-attacking queens.
func Count(n int) (int, error) {
	p, err := NewProblem(n)
	if err != nil {
		return 0, err
	}

	count := 0
	err = dlx.Solve(p, dlx.DefaultOptions(), func(_ dlx.Solution[Square], _ *dlx.SearchState) {
		count++
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// First returns the first placement found under the minimum-size
// heuristic as files indexed by rank, or nil when the board has no
// solution (n = 2 and n = 3).
func First(n int) ([]int, error) {
	p, err := NewProblem(n)
	if err != nil {
		return nil, err
	}

	sol, err := dlx.SolveFirst(p, dlx.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, nil
	}

	return Files(sol.Rows, n), nil
}

// Files flattens a solution's squares into files indexed by rank.
// Every exact cover places exactly one queen per rank, so the mapping
// is total regardless of the descent order the squares arrived in.
func Files(squares []Square, n int) []int {
	files := make([]int, n)
	for _, sq := range squares {
		files[sq.Rank] = sq.File
	}

	return files
}
