// Package queens encodes the N-Queens puzzle as an exact-cover problem
// for the dlx engine.
//
// 🚀 Encoding
//
//	Placing n non-attacking queens on an n×n board is exact cover over:
//
//	  • n rank constraints   (mandatory — every rank holds exactly one queen)
//	  • n file constraints   (mandatory — every file holds exactly one queen)
//	  • 2n−1 diagonal and 2n−1 anti-diagonal constraints (optional —
//	    a diagonal may hold at most one queen, but most hold none)
//
//	Each candidate row is one square: it covers its rank, its file, its
//	diagonal and its anti-diagonal. The optional diagonals are exactly
//	Knuth's "secondary items" — without them the encoding is impossible,
//	since n queens cannot occupy all 2n−1 diagonals of a direction.
//
// ⚙️ Usage:
//
//	n, err := queens.Count(8)        // 92
//	files, err := queens.First(8)    // [0 4 7 5 2 6 1 3]
//
// Complexity: exponential in n, as the puzzle demands; the minimum-size
// heuristic keeps small boards instantaneous.
package queens
