package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dlx"
	"github.com/katalvlaran/dlx/sudoku"
)

// easyPuzzle is the classic textbook grid with a unique solution.
const easyPuzzle = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79`

const easySolution = `534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179`

// TestParse_Forms accepts nine-line and single-line input with mixed
// empty-cell markers, and round-trips through String.
func TestParse_Forms(t *testing.T) {
	g, err := sudoku.Parse(easyPuzzle)
	require.NoError(t, err)
	assert.Equal(t, 30, g.Clues())

	flat := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	g2, err := sudoku.Parse(flat)
	require.NoError(t, err)
	assert.Equal(t, g, g2)

	zeros := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	g3, err := sudoku.Parse(zeros)
	require.NoError(t, err)
	assert.Equal(t, g, g3)

	reparsed, err := sudoku.Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, reparsed)
}

// TestParse_Errors rejects wrong cell counts and conflicting givens.
func TestParse_Errors(t *testing.T) {
	_, err := sudoku.Parse("123")
	assert.ErrorIs(t, err, sudoku.ErrGridSize)

	long := easyPuzzle + "1"
	_, err = sudoku.Parse(long)
	assert.ErrorIs(t, err, sudoku.ErrGridSize)

	// Two 5s in the first row.
	bad := "55......." +
		"........." + "........." + "........." + "........." +
		"........." + "........." + "........." + "........."
	_, err = sudoku.Parse(bad)
	assert.ErrorIs(t, err, sudoku.ErrConflict)
}

// TestSolve_EasyPuzzle completes the canonical grid to its unique
// solution.
func TestSolve_EasyPuzzle(t *testing.T) {
	g, err := sudoku.Parse(easyPuzzle)
	require.NoError(t, err)

	solved, ok := sudoku.Solve(g)
	require.True(t, ok)

	want, err := sudoku.Parse(easySolution)
	require.NoError(t, err)
	assert.Equal(t, want, solved)

	// Givens must survive solving untouched.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				assert.Equal(t, g[r][c], solved[r][c], "cell (%d,%d)", r, c)
			}
		}
	}

	assert.Equal(t, 1, sudoku.Count(g, 2), "the easy puzzle is unique")
}

// TestSolve_Unsolvable: consistent givens can still leave a cell with
// no admissible digit.
func TestSolve_Unsolvable(t *testing.T) {
	// Row 0 holds 1..8; the 9 in row 1 blocks the last cell's column.
	g, err := sudoku.Parse(
		"12345678." +
			"........9" +
			"........." + "........." + "........." +
			"........." + "........." + "........." + ".........")
	require.NoError(t, err)

	_, ok := sudoku.Solve(g)
	assert.False(t, ok)
	assert.Zero(t, sudoku.Count(g, 10))
}

// TestSolve_ConflictingGivens short-circuits without searching.
func TestSolve_ConflictingGivens(t *testing.T) {
	var g sudoku.Grid
	g[0][0], g[0][8] = 7, 7

	_, ok := sudoku.Solve(g)
	assert.False(t, ok)
	assert.Zero(t, sudoku.Count(g, 1))
}

// TestCount_EmptyGrid: the blank grid has a vast solution space; the
// limit bounds the enumeration.
func TestCount_EmptyGrid(t *testing.T) {
	var g sudoku.Grid
	assert.Equal(t, 3, sudoku.Count(g, 3))
	assert.Zero(t, sudoku.Count(g, 0))
}

// TestNewProblem_Shape: the encoding carries 324 mandatory constraints
// and one row per admissible placement.
func TestNewProblem_Shape(t *testing.T) {
	g, err := sudoku.Parse(easyPuzzle)
	require.NoError(t, err)

	p := sudoku.NewProblem(g)
	assert.Equal(t, 324, p.Constraints())
	assert.Zero(t, p.OptionalConstraints())

	rows := 0
	givens := 0
	p.GenerateRows(func(pl sudoku.Placement, columns []int) {
		rows++
		require.Len(t, columns, 4)
		if g[pl.Row][pl.Col] != 0 {
			givens++
			assert.Equal(t, g[pl.Row][pl.Col], pl.Digit)
		}
	})
	assert.Equal(t, 30, givens, "one row per given")
	assert.Greater(t, rows, 81, "open cells contribute multiple candidates")

	stats := &dlx.Stats{}
	opts := dlx.DefaultOptions()
	opts.Stats = stats
	_, err = dlx.SolveFirst(p, opts)
	require.NoError(t, err)
	assert.Equal(t, 324, stats.Columns)
	assert.Equal(t, rows*4, stats.Cells)
}

// TestGenerate_Deterministic: identical seeds produce identical
// puzzles; distinct seeds diverge.
func TestGenerate_Deterministic(t *testing.T) {
	a := sudoku.Generate(42, 30)
	b := sudoku.Generate(42, 30)
	assert.Equal(t, a, b)

	c := sudoku.Generate(7, 30)
	assert.NotEqual(t, a, c)

	// Seed 0 falls back to the fixed default seed.
	assert.Equal(t, sudoku.Generate(0, 30), sudoku.Generate(0, 30))
}

// TestGenerate_UniqueSolution: generated puzzles keep exactly one
// completion and a sane clue count.
func TestGenerate_UniqueSolution(t *testing.T) {
	g := sudoku.Generate(42, 30)

	require.NoError(t, g.Validate())
	assert.GreaterOrEqual(t, g.Clues(), 17)
	assert.Less(t, g.Clues(), 81)
	assert.Equal(t, 1, sudoku.Count(g, 2))

	solved, ok := sudoku.Solve(g)
	require.True(t, ok)
	assert.Equal(t, 81, solved.Clues())
}

// TestDigitSet covers the bitset used by the encoder.
func TestDigitSet(t *testing.T) {
	var s sudoku.DigitSet
	assert.Zero(t, s.Size())
	assert.Empty(t, s.Digits())

	s.Add(3)
	s.Add(7)
	s.Add(3)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(4))
	assert.Equal(t, []int8{3, 7}, s.Digits())

	s.Remove(3)
	assert.False(t, s.Has(3))
	assert.Equal(t, 1, s.Size())

	assert.Equal(t, 9, sudoku.AllDigits.Size())
	assert.Equal(t, []int8{1, 2, 3, 4, 5, 6, 7, 8, 9}, sudoku.AllDigits.Digits())
}
