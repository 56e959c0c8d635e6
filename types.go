// Package dlx defines the public types, configuration options, and
// sentinel errors of the exact-cover engine.
//
// Design goals:
//   - Determinism: fixed inputs and strategy yield a fixed solution order.
//   - Strict sentinels: only errors declared here; no fmt.Errorf where a sentinel suffices.
//   - Zero surprises: sensible defaults (minimum-size heuristic, recursive driver).
package dlx

import "errors"

// Sentinel errors for problem validation and option governance.
var (
	// ErrProblemNil indicates a nil Problem was passed to a solve entry point.
	ErrProblemNil = errors.New("dlx: problem is nil")

	// ErrCallbackNil indicates Solve was called without a callback.
	ErrCallbackNil = errors.New("dlx: callback is nil")

	// ErrColumnOutOfRange indicates a generated row references a column
	// outside [0, Constraints+OptionalConstraints); construction is refused.
	ErrColumnOutOfRange = errors.New("dlx: row references a column outside the matrix")

	// ErrUnknownStrategy indicates Options.Strategy holds a value outside the enum.
	ErrUnknownStrategy = errors.New("dlx: unknown column-selection strategy")
)

// Strategy selects how the search chooses the next column to branch on.
type Strategy int

const (
	// MinimumSize branches on the mandatory column with the fewest live
	// cells (Knuth's S heuristic), ties broken by earliest ring position.
	MinimumSize Strategy = iota

	// FirstColumn branches on the first mandatory column to the right of
	// the header. Cheap to select, usually far more backtracking.
	FirstColumn
)

// Problem describes an exact-cover instance. R is the caller's row
// identifier type; the engine never inspects it beyond copying.
//
// Contracts:
//   - Constraints returns M ≥ 0, the number of mandatory columns
//     (each must be covered exactly once).
//   - OptionalConstraints returns K ≥ 0, the number of optional columns
//     (each may be covered at most once). Columns [0,M) are mandatory,
//     [M,M+K) optional.
//   - GenerateRows calls emit once per candidate row with its identifier
//     and the columns it covers. Rows with no columns are skipped.
//     The generator must be finite and, for deterministic solves,
//     emit in a deterministic order.
type Problem[R any] interface {
	Constraints() int
	OptionalConstraints() int
	GenerateRows(emit func(id R, columns []int))
}

// Solution is one exact cover: the identifiers of the chosen rows,
// in the order the search selected them (descent order, not sorted).
type Solution[R any] struct {
	Rows []R
}

// SearchState carries the cooperative-termination flag shared between
// the search driver and the solution callback. Terminating inside the
// callback unwinds the search without further callbacks.
type SearchState struct {
	terminated bool
}

// Terminate requests that the search stop after the current callback returns.
func (s *SearchState) Terminate() { s.terminated = true }

// Terminated reports whether termination has been requested.
func (s *SearchState) Terminated() bool { return s.terminated }

// Callback receives each discovered solution together with the search
// state. Every solution is a fresh copy, so retaining it is safe;
// mutating it has no effect on the search.
type Callback[R any] func(Solution[R], *SearchState)

// Stats accumulates search diagnostics when attached via Options.Stats.
// All counters are totals for one solve invocation.
type Stats struct {
	// Columns and Cells describe the built matrix (active columns at
	// build time and total row cells).
	Columns int
	Cells   int

	// NodesVisited counts search-tree nodes expanded (column selections).
	NodesVisited int

	// Backtracks counts abandoned branches.
	Backtracks int

	// MaxDepth is the deepest partial solution reached.
	MaxDepth int

	// Solutions counts callback invocations.
	Solutions int
}

// Options configures a solve.
//
// Fields:
//
//	Strategy  - column-selection heuristic (MinimumSize or FirstColumn).
//	Iterative - run the explicit-stack driver instead of the recursive one.
//	            Observable behavior is identical; useful when constraint
//	            chains are deep enough to threaten the goroutine stack.
//	Stats     - optional diagnostics sink; nil disables collection.
type Options struct {
	Strategy  Strategy
	Iterative bool
	Stats     *Stats
}

// DefaultOptions returns an Options struct pre-populated with safe defaults:
//
//	Strategy:  MinimumSize  // Knuth's heuristic
//	Iterative: false        // recursive driver
//	Stats:     nil          // no diagnostics
func DefaultOptions() Options {
	return Options{
		Strategy:  MinimumSize,
		Iterative: false,
		Stats:     nil,
	}
}

// Validate checks that Options holds a valid combination.
// It returns ErrUnknownStrategy for a Strategy outside the enum.
func (o *Options) Validate() error {
	if o.Strategy != MinimumSize && o.Strategy != FirstColumn {
		return ErrUnknownStrategy
	}

	return nil
}
