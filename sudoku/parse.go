package sudoku

// Parse reads a grid from text: 81 cells in row-major order, either as
// one long string or nine lines. Bytes '1'..'9' are givens; any other
// non-whitespace byte ('.', '0', '_', letters) marks an empty cell.
// Whitespace is ignored entirely.
//
// Errors: ErrGridSize when the text has more or fewer than 81 cells,
// ErrConflict when two equal givens share a house.
func Parse(s string) (Grid, error) {
	var g Grid

	i := 0
	for j := 0; j < len(s); j++ {
		ch := s[j]
		switch ch {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if i >= 81 {
			return Grid{}, ErrGridSize
		}
		if ch >= '1' && ch <= '9' {
			g[i/9][i%9] = int8(ch - '0')
		}
		i++
	}
	if i != 81 {
		return Grid{}, ErrGridSize
	}

	if err := g.Validate(); err != nil {
		return Grid{}, err
	}

	return g, nil
}
