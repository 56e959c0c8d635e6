package sudoku_test

import (
	"fmt"

	"github.com/katalvlaran/dlx/sudoku"
)

// ExampleSolve completes the classic textbook puzzle.
func ExampleSolve() {
	g, err := sudoku.Parse(
		"53..7...." +
			"6..195..." +
			".98....6." +
			"8...6...3" +
			"4..8.3..1" +
			"7...2...6" +
			".6....28." +
			"...419..5" +
			"....8..79")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	solved, ok := sudoku.Solve(g)
	fmt.Println(ok)
	fmt.Println(solved)
	// Output:
	// true
	// 534678912
	// 672195348
	// 198342567
	// 859761423
	// 426853791
	// 713924856
	// 961537284
	// 287419635
	// 345286179
}

// ExampleCount probes a puzzle for uniqueness.
func ExampleCount() {
	g, _ := sudoku.Parse(
		"53..7...." +
			"6..195..." +
			".98....6." +
			"8...6...3" +
			"4..8.3..1" +
			"7...2...6" +
			".6....28." +
			"...419..5" +
			"....8..79")

	fmt.Println(sudoku.Count(g, 2))
	// Output:
	// 1
}
