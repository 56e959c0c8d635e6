// Package sudoku - deterministic puzzle generation.
//
// The generator is naïve by design: solve a randomized empty grid to
// get a full board, then strip cells in random order as long as the
// puzzle keeps a unique completion. All randomness flows from one
// seeded source; no time-based seeding anywhere.
package sudoku

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass
// seed==0. The value is arbitrary but stable to keep reproducible
// defaults.
const defaultRNGSeed int64 = 1

// minClues is the fewest givens any uniquely solvable 9×9 puzzle can
// have (McGuire et al.); Generate never aims below it.
const minClues = 17

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Generate produces a puzzle with a unique completion, aiming for the
// given clue count (clamped to [17, 81]). Fewer removals may survive
// the uniqueness check, so the result can carry more clues than asked.
// Identical seeds yield identical puzzles.
func Generate(seed int64, clues int) Grid {
	rng := rngFromSeed(seed)
	target := min(max(clues, minClues), 81)

	g := randomSolved(rng)
	remaining := 81
	for _, idx := range rng.Perm(81) {
		if remaining <= target {
			break
		}
		r, c := idx/9, idx%9
		d := g[r][c]
		if d == 0 {
			continue
		}
		g[r][c] = 0
		if Count(g, 2) != 1 {
			g[r][c] = d

			continue
		}
		remaining--
	}

	return g
}

// randomSolved builds a full board by permuting the first row and
// letting the solver complete it. The search is deterministic, so the
// board depends only on the permutation.
func randomSolved(rng *rand.Rand) Grid {
	var g Grid
	for i, v := range rng.Perm(9) {
		g[0][i] = int8(v + 1)
	}

	solved, ok := Solve(g)
	if !ok {
		// A permuted first row is always completable; this branch is
		// unreachable but keeps the zero grid out of callers on bugs.
		return g
	}

	return solved
}
