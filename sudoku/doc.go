// Package sudoku encodes 9×9 Sudoku grids as exact-cover problems for
// the dlx engine, with puzzle parsing, printing, and a seeded generator.
//
// 🚀 Encoding
//
//	A grid is exact cover over 324 mandatory constraints:
//
//	  • 81 cell constraints — every cell holds exactly one digit
//	  • 81 row constraints  — every row holds each digit exactly once
//	  • 81 column constraints
//	  • 81 box constraints
//
//	Each candidate row is one placement (row, column, digit) covering
//	its four constraints. Givens emit a single row per cell; open cells
//	emit one row per digit still admissible in the cell's row, column
//	and box (tracked with DigitSet bitsets).
//
// ⚙️ Usage:
//
//	g, err := sudoku.Parse(text)     // 81 characters, '1'..'9' are givens
//	solved, ok := sudoku.Solve(g)    // ok=false when no completion exists
//	n := sudoku.Count(g, 2)          // uniqueness probe
//	puzzle := sudoku.Generate(42, 30) // deterministic puzzle, ~30 clues
//
// Determinism: the generator is driven entirely by its seed (seed 0
// selects a fixed default), so the same call yields the same puzzle on
// every platform.
package sudoku
