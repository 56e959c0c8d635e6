package dlx

// matrix is the arena-backed sparse representation of one exact-cover
// instance: a circular column ring anchored at head (mandatory columns
// first, then optional), a circular vertical ring per column, and a
// circular horizontal ring per row. Row identifiers live in rows; cells
// refer to them by index so the arena stays value-typed.
type matrix[R any] struct {
	arena
	head int
	rows []R
}

// newMatrix builds the initial matrix state for p. It returns
// ErrColumnOutOfRange if any generated row references a column outside
// [0, M+K). Rows with empty column lists are skipped; duplicate columns
// within one row are accepted as supplied.
//
// The caller has already ruled out M = 0, so the matrix always carries
// at least one mandatory column.
//
// Complexity: O(M + K + total cells).
func newMatrix[R any](p Problem[R]) (*matrix[R], error) {
	mandatory := p.Constraints()
	optional := max(p.OptionalConstraints(), 0)
	total := mandatory + optional

	// 1) Pre-reserve the fixed prefix: header + one record per column.
	//    Cells grow the arena afterwards; append tolerates that.
	m := &matrix[R]{arena: arena{nodes: make([]node, 0, total+1)}}
	m.head = m.addHeader()

	// 2) Column records in index order: mandatory then optional, each
	//    spliced immediately left of the header so that walking right
	//    from the header visits them in creation order.
	var c int
	for c = 0; c < mandatory; c++ {
		m.linkColumn(m.addColumn(false))
	}
	for c = 0; c < optional; c++ {
		m.linkColumn(m.addColumn(true))
	}

	// 3) Rows. Column index i maps to arena index head+1+i because the
	//    column records occupy the arena slots right after the header.
	var buildErr error
	p.GenerateRows(func(id R, columns []int) {
		if buildErr != nil || len(columns) == 0 {
			return
		}
		for _, ci := range columns {
			if ci < 0 || ci >= total {
				buildErr = ErrColumnOutOfRange

				return
			}
		}

		rowIdx := len(m.rows)
		m.rows = append(m.rows, id)

		first := -1
		for _, ci := range columns {
			x := m.addCell(rowIdx, m.head+1+ci)
			m.linkCellBottom(x)
			if first < 0 {
				first = x
			} else {
				m.linkCellRow(x, first)
			}
		}
	})
	if buildErr != nil {
		return nil, buildErr
	}

	return m, nil
}

// linkColumn splices column record c into the column ring just left of
// the header, preserving circularity.
func (m *matrix[R]) linkColumn(c int) {
	n := m.nodes
	n[c].right = m.head
	n[c].left = n[m.head].left
	n[n[m.head].left].right = c
	n[m.head].left = c
}

// linkCellBottom splices cell x at the bottom of its column's vertical
// ring (just above the column record) and bumps the column size.
func (m *matrix[R]) linkCellBottom(x int) {
	n := m.nodes
	c := n[x].col
	n[x].down = c
	n[x].up = n[c].up
	n[n[c].up].down = x
	n[c].up = x
	n[c].size++
}

// linkCellRow splices cell x into the horizontal ring of its row, just
// left of the row's first cell, so cells appear in supplied order.
func (m *matrix[R]) linkCellRow(x, first int) {
	n := m.nodes
	n[x].right = first
	n[x].left = n[first].left
	n[n[first].left].right = x
	n[first].left = x
}

// cover removes column c from the column ring and removes every row
// with a cell in c from every other column that row touches. Row rings
// stay intact: only vertical links and the column ring dance.
func (m *matrix[R]) cover(c int) {
	n := m.nodes
	n[n[c].left].right = n[c].right
	n[n[c].right].left = n[c].left
	for v := n[c].down; v != c; v = n[v].down {
		for h := n[v].right; h != v; h = n[h].right {
			n[n[h].up].down = n[h].down
			n[n[h].down].up = n[h].up
			n[n[h].col].size--
		}
	}
}

// uncover is the exact inverse of cover, traversed in reverse order so
// every per-step relink sees the structure its unlink left behind.
// After cover(c); uncover(c) the arena is bit-identical to before.
func (m *matrix[R]) uncover(c int) {
	n := m.nodes
	for v := n[c].up; v != c; v = n[v].up {
		for h := n[v].left; h != v; h = n[h].left {
			n[n[h].col].size++
			n[n[h].up].down = h
			n[n[h].down].up = h
		}
	}
	n[n[c].left].right = c
	n[n[c].right].left = c
}

// selectColumn returns the next column to branch on per the strategy,
// or -1 when no mandatory column remains active — the signal that the
// current path is a solution (optional columns alone cannot force a
// branch).
//
// Mandatory columns precede optional ones in the initial ring and
// covering preserves relative order, so the mandatory columns are
// exactly the prefix of the ring before the first optional record.
func (m *matrix[R]) selectColumn(s Strategy) int {
	n := m.nodes
	first := n[m.head].right
	if first == m.head || n[first].optional {
		return -1
	}
	if s == FirstColumn {
		return first
	}

	// Minimum-size scan over the mandatory prefix; strict < keeps the
	// earliest ring position on ties.
	best, bestSize := first, n[first].size
	for c := n[first].right; c != m.head && !n[c].optional; c = n[c].right {
		if n[c].size < bestSize {
			best, bestSize = c, n[c].size
		}
	}

	return best
}

// activeColumns counts the records currently in the column ring.
// Used for diagnostics only.
func (m *matrix[R]) activeColumns() int {
	n := m.nodes
	count := 0
	for c := n[m.head].right; c != m.head; c = n[c].right {
		count++
	}

	return count
}

// cellCount reports the total number of row cells in the arena: every
// node whose row field is set. Used for diagnostics only.
func (m *matrix[R]) cellCount() int {
	count := 0
	for i := range m.nodes {
		if m.nodes[i].row >= 0 {
			count++
		}
	}

	return count
}
