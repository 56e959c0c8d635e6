package dlx

// frame is one level of the explicit-stack driver: the column being
// branched on and the cell of the branch currently taken.
type frame struct {
	col  int
	cell int
}

// searchIterative is the state-stack rendition of the recursive driver.
// Each loop turn either descends (select a column, take its first
// branch) or backtracks (drop the current branch, advance to the next
// cell down, or give the column back and pop). Cover and uncover calls
// happen in exactly the order the recursive driver makes them, so the
// two drivers emit identical solution sequences.
func (s *searcher[R]) searchIterative() {
	m := s.m
	n := m.nodes
	stack := make([]frame, 0, cap(s.path))
	descend := true

	for {
		if s.state.terminated {
			return
		}

		if descend {
			if st := s.opts.Stats; st != nil {
				st.NodesVisited++
			}
			c := m.selectColumn(s.opts.Strategy)
			if c < 0 {
				s.emit()
				if s.state.terminated {
					return
				}
				descend = false

				continue
			}

			m.cover(c)
			v := n[c].down
			if v == c {
				// Exhausted column: no branch can cover it.
				m.uncover(c)
				descend = false

				continue
			}
			stack = append(stack, frame{col: c, cell: v})
			s.push(n[v].row)
			for h := n[v].right; h != v; h = n[h].right {
				m.cover(n[h].col)
			}

			continue
		}

		// Backtrack: undo the branch on top of the stack.
		if len(stack) == 0 {
			return
		}
		top := len(stack) - 1
		f := stack[top]
		stack = stack[:top]

		s.path = s.path[:len(s.path)-1]
		for h := n[f.cell].left; h != f.cell; h = n[h].left {
			m.uncover(n[h].col)
		}
		if st := s.opts.Stats; st != nil {
			st.Backtracks++
		}

		if v := n[f.cell].down; v != f.col {
			// Advance to the next row of the same column.
			stack = append(stack, frame{col: f.col, cell: v})
			s.push(n[v].row)
			for h := n[v].right; h != v; h = n[h].right {
				m.cover(n[h].col)
			}
			descend = true

			continue
		}

		m.uncover(f.col)
	}
}
