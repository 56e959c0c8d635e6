// Package dlx enumerates exact covers of sparse 0/1 constraint matrices
// using Knuth's Dancing Links realization of Algorithm X.
//
// 🚀 What is dlx?
//
//	A small, allocation-friendly exact-cover engine:
//
//	  • Arena-backed matrix: every link is an integer index, no pointer webs
//	  • Reversible cover/uncover primitives — the "dancing" links themselves
//	  • Two column heuristics: first active column, or Knuth's minimum-size
//	  • Optional (secondary) constraints: covered at most once, never forced
//	  • Callback-driven delivery with cooperative termination
//
// ✨ Why choose dlx?
//
//   - Deterministic          — same problem, same strategy ⇒ same solution order
//   - Zero global state      — each Solve owns its matrix; run solves side by side
//   - Generic row keys       — solutions carry your own row identifiers
//   - Pure Go                — no cgo, no hidden dependencies
//
// The engine consumes a Problem: the number of mandatory and optional
// constraints plus a generator that emits each candidate row with the
// constraint columns it satisfies. Solutions are delivered to a callback
// as they are discovered, in descent order; SolveFirst, SolveMany and
// SolveAll wrap the callback form for the common cases.
//
// Quick ASCII example (Knuth's 6×7 matrix, unique cover {A, D, E}):
//
//	     0 1 2 3 4 5 6
//	  A  . . x . x x .
//	  B  x . . x . . x
//	  C  . x x . . x .
//	  D  x . . x . . .
//	  E  . x . . . . x
//	  F  . . . x x . x
//
// Ready-made encoders live in the subpackages:
//
//	sudoku/ — 9×9 grids as a 324-constraint exact cover, plus parsing,
//	          printing and a seeded puzzle generator
//	queens/ — N-Queens with optional diagonal constraints
//
//	go get github.com/katalvlaran/dlx
package dlx
