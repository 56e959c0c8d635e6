package dlx

// node is the single record type of the link arena. Every matrix object
// — the header, the column records, and the row cells — is one node, and
// every "pointer" between them is an index into the arena slice.
//
// Field use by role:
//
//	header:  left/right anchor the column ring; up/down unused (self).
//	column:  left/right in the column ring; up/down anchor the cell ring;
//	         col is the node's own index; size counts live cells;
//	         optional marks secondary constraints.
//	cell:    left/right in its row ring; up/down in its column ring;
//	         col names the owning column record; row indexes the
//	         matrix row-identifier table.
type node struct {
	left, right int
	up, down    int
	col         int
	row         int
	size        int
	optional    bool
}

// arena is a contiguous, index-addressed pool of nodes. It grows only
// during matrix construction; covering and uncovering rewrite link
// fields in place and never add or remove records.
type arena struct {
	nodes []node
}

// alloc appends a fresh node with all four links self-referential and
// returns its index. O(1) amortized.
func (a *arena) alloc(col, row int) int {
	i := len(a.nodes)
	a.nodes = append(a.nodes, node{left: i, right: i, up: i, down: i, col: col, row: row})

	return i
}

// addHeader appends the column-ring anchor. The header has no owning
// column and no row; both are conventionally its own index and -1.
func (a *arena) addHeader() int {
	return a.alloc(len(a.nodes), -1)
}

// addColumn appends a column record whose col field names itself.
func (a *arena) addColumn(optional bool) int {
	i := a.alloc(len(a.nodes), -1)
	a.nodes[i].optional = optional

	return i
}

// addCell appends a cell for (row, column). The cell starts detached;
// the builder splices it into its column and row rings.
func (a *arena) addCell(row, col int) int {
	return a.alloc(col, row)
}

// snapshot returns a deep copy of the arena records. Because nodes are
// value records linked by index, a slice copy is a complete structural
// snapshot — the backbone of the reversibility tests.
func (a *arena) snapshot() []node {
	out := make([]node, len(a.nodes))
	copy(out, a.nodes)

	return out
}
