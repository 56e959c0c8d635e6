// Command dlxdemo walks through the engine on three classic exact-cover
// problems: Knuth's 6×7 matrix, 8-queens, and a Sudoku grid.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/katalvlaran/dlx"
	"github.com/katalvlaran/dlx/queens"
	"github.com/katalvlaran/dlx/sudoku"
)

func main() {
	fmt.Println("Dancing Links Demonstration")
	fmt.Println("===========================")

	demoKnuthMatrix()
	demoQueens()
	demoSudoku()
}

func demoKnuthMatrix() {
	color.HiCyan("\nKnuth's 6x7 matrix")
	color.HiCyan("------------------")

	p := dlx.FromRows[string](7, 0, []dlx.Row[string]{
		{ID: "A", Columns: []int{2, 4, 5}},
		{ID: "B", Columns: []int{0, 3, 6}},
		{ID: "C", Columns: []int{1, 2, 5}},
		{ID: "D", Columns: []int{0, 3}},
		{ID: "E", Columns: []int{1, 6}},
		{ID: "F", Columns: []int{3, 4, 6}},
	})

	stats := &dlx.Stats{}
	opts := dlx.DefaultOptions()
	opts.Stats = stats

	sols, err := dlx.SolveAll(p, opts)
	if err != nil {
		color.HiRed("solve failed: %v", err)

		return
	}
	for _, s := range sols {
		fmt.Printf("cover: %s\n", color.HiGreenString("%v", s.Rows))
	}
	printStats(stats)
}

func demoQueens() {
	color.HiCyan("\n8-Queens")
	color.HiCyan("--------")

	total, err := queens.Count(8)
	if err != nil {
		color.HiRed("count failed: %v", err)

		return
	}
	files, err := queens.First(8)
	if err != nil {
		color.HiRed("solve failed: %v", err)

		return
	}

	fmt.Printf("placements: %s\n", color.HiGreenString("%d", total))
	fmt.Printf("first found: files %s by rank\n", color.HiGreenString("%v", files))
	for _, file := range files {
		for f := 0; f < len(files); f++ {
			if f == file {
				color.New(color.Bold, color.FgHiYellow).Print("Q ")
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}

func demoSudoku() {
	color.HiCyan("\nSudoku")
	color.HiCyan("------")

	g := sudoku.Generate(42, 30)
	fmt.Printf("generated puzzle (%d clues, seed 42):\n", g.Clues())
	sudoku.Print(g, g)

	solved, ok := sudoku.Solve(g)
	if !ok {
		color.HiRed("generated puzzle has no solution; generator bug")

		return
	}
	fmt.Println("solution:")
	sudoku.Print(solved, g)
}

func printStats(stats *dlx.Stats) {
	fmt.Printf("matrix: %s columns, %s cells\n",
		color.HiYellowString("%d", stats.Columns),
		color.HiYellowString("%d", stats.Cells))
	fmt.Printf("search: %s nodes, %s backtracks, depth %s\n",
		color.HiGreenString("%d", stats.NodesVisited),
		color.HiRedString("%d", stats.Backtracks),
		color.HiBlueString("%d", stats.MaxDepth))
}
