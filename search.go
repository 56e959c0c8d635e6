package dlx

// searcher drives Algorithm X over one matrix. It owns the partial
// solution path (row-table indices of the branches currently taken),
// the shared termination flag, and the diagnostics sink.
type searcher[R any] struct {
	m     *matrix[R]
	opts  Options
	fn    Callback[R]
	state *SearchState
	path  []int
}

// newSearcher prepares a searcher for one solve invocation. The path
// starts with a fixed capacity of 32 rows and grows by append when a
// deeper solution needs more.
func newSearcher[R any](m *matrix[R], opts Options, fn Callback[R]) *searcher[R] {
	return &searcher[R]{
		m:     m,
		opts:  opts,
		fn:    fn,
		state: &SearchState{},
		path:  make([]int, 0, 32),
	}
}

// run dispatches to the configured driver. Both drivers yield identical
// solution sequences for the same matrix and strategy.
func (s *searcher[R]) run() {
	if s.opts.Iterative {
		s.searchIterative()

		return
	}
	s.search()
}

// search is the recursive Algorithm X loop:
//
//	choose a column C (or emit the path as a solution if none remains)
//	cover C
//	for each row with a cell in C, in insertion order:
//	    take the row: push its id, cover its other columns
//	    recurse
//	    drop the row: uncover in reverse, pop
//	uncover C
//
// Once termination is requested the unwind performs no further
// uncovering — the matrix is discarded on return, so restoring it
// would be wasted motion.
func (s *searcher[R]) search() {
	if s.state.terminated {
		return
	}
	if st := s.opts.Stats; st != nil {
		st.NodesVisited++
	}

	c := s.m.selectColumn(s.opts.Strategy)
	if c < 0 {
		s.emit()

		return
	}

	m := s.m
	n := m.nodes // the arena never grows during search, so n stays valid
	m.cover(c)
	for v := n[c].down; v != c; v = n[v].down {
		s.push(n[v].row)
		for h := n[v].right; h != v; h = n[h].right {
			m.cover(n[h].col)
		}

		s.search()
		if s.state.terminated {
			return
		}

		s.path = s.path[:len(s.path)-1]
		for h := n[v].left; h != v; h = n[h].left {
			m.uncover(n[h].col)
		}
		if st := s.opts.Stats; st != nil {
			st.Backtracks++
		}
	}
	m.uncover(c)
}

// push records a branch on the path and keeps the depth diagnostic.
func (s *searcher[R]) push(row int) {
	s.path = append(s.path, row)
	if st := s.opts.Stats; st != nil && len(s.path) > st.MaxDepth {
		st.MaxDepth = len(s.path)
	}
}

// emit materializes the current path into row identifiers, in descent
// order, and hands the solution to the callback.
func (s *searcher[R]) emit() {
	rows := make([]R, len(s.path))
	for i, ri := range s.path {
		rows[i] = s.m.rows[ri]
	}
	if st := s.opts.Stats; st != nil {
		st.Solutions++
	}
	s.fn(Solution[R]{Rows: rows}, s.state)
}
