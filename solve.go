// Package dlx - unified entry points for the exact-cover engine.
//
// This file provides the canonical ways to run a search:
//
//   - Solve: build the matrix, run the configured driver, stream every
//     solution to the callback until exhaustion or termination.
//   - SolveFirst / SolveMany / SolveAll: convenience wrappers over Solve
//     that collect instead of streaming.
//
// Design principles:
//   - Deterministic: no randomness anywhere in the engine.
//   - Strict sentinels: only errors from types.go.
//   - One matrix per invocation: solves never share state and may run
//     concurrently on separate problems without locks.
package dlx

// Solve enumerates the exact covers of p and invokes fn for each one,
// in discovery order, until the search space is exhausted or fn
// terminates the search via the SearchState.
//
// Contracts:
//   - p and fn must be non-nil.
//   - A problem with zero mandatory constraints has no matrix to cover;
//     Solve returns nil without invoking fn.
//   - fn runs inline on the calling goroutine and must return before
//     the search continues.
//
// Errors: ErrProblemNil, ErrCallbackNil, ErrUnknownStrategy, and
// ErrColumnOutOfRange from matrix construction.
//
// Complexity: matrix build is O(columns + cells); the search itself is
// exponential in the worst case — that is the problem's nature, not the
// representation's.
func Solve[R any](p Problem[R], opts Options, fn Callback[R]) error {
	if p == nil {
		return ErrProblemNil
	}
	if fn == nil {
		return ErrCallbackNil
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if p.Constraints() <= 0 {
		return nil
	}

	m, err := newMatrix(p)
	if err != nil {
		return err
	}
	if st := opts.Stats; st != nil {
		st.Columns = m.activeColumns()
		st.Cells = m.cellCount()
	}

	newSearcher(m, opts, fn).run()

	return nil
}

// SolveFirst runs the search and returns the first solution found, or
// nil when the problem has none.
func SolveFirst[R any](p Problem[R], opts Options) (*Solution[R], error) {
	var out *Solution[R]
	err := Solve(p, opts, func(sol Solution[R], state *SearchState) {
		out = &sol
		state.Terminate()
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SolveMany collects up to limit solutions in discovery order.
// A limit ≤ 0 yields an empty result without searching; use SolveAll
// to collect without bound.
func SolveMany[R any](p Problem[R], opts Options, limit int) ([]Solution[R], error) {
	if limit <= 0 {
		if p == nil {
			return nil, ErrProblemNil
		}
		if err := opts.Validate(); err != nil {
			return nil, err
		}

		return []Solution[R]{}, nil
	}

	out := make([]Solution[R], 0, limit)
	err := Solve(p, opts, func(sol Solution[R], state *SearchState) {
		out = append(out, sol)
		if len(out) >= limit {
			state.Terminate()
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SolveAll collects every solution in discovery order.
func SolveAll[R any](p Problem[R], opts Options) ([]Solution[R], error) {
	out := make([]Solution[R], 0)
	err := Solve(p, opts, func(sol Solution[R], _ *SearchState) {
		out = append(out, sol)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Row pairs a row identifier with the columns it covers; the literal
// form of a matrix row for FromRows.
type Row[R any] struct {
	ID      R
	Columns []int
}

// rowsProblem adapts a static row list to the Problem interface.
type rowsProblem[R any] struct {
	mandatory int
	optional  int
	rows      []Row[R]
}

func (p rowsProblem[R]) Constraints() int         { return p.mandatory }
func (p rowsProblem[R]) OptionalConstraints() int { return p.optional }

func (p rowsProblem[R]) GenerateRows(emit func(id R, columns []int)) {
	for _, r := range p.rows {
		emit(r.ID, r.Columns)
	}
}

// FromRows builds a Problem from an explicit row list: mandatory
// columns [0, mandatory), optional columns [mandatory, mandatory+optional).
// Rows are generated in slice order, which fixes the solution order.
func FromRows[R any](mandatory, optional int, rows []Row[R]) Problem[R] {
	return rowsProblem[R]{mandatory: mandatory, optional: optional, rows: rows}
}
