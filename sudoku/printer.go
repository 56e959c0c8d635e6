package sudoku

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	borderTop = "┌───────┬───────┬───────┐"
	borderMid = "├───────┼───────┼───────┤"
	borderBot = "└───────┴───────┴───────┘"
	edge      = "│"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
)

// Print writes g to stdout with box borders. Cells that are filled in
// givens are highlighted as the puzzle's fixed values; everything else
// prints as a solved value. Empty cells print as dots.
func Print(g, givens Grid) {
	color.HiWhite(borderTop)
	for r := range g {
		if r != 0 && r%3 == 0 {
			color.HiWhite(borderMid)
		}
		printRow(g[r], givens[r])
	}
	color.HiWhite(borderBot)
}

func printRow(row, givenRow [9]int8) {
	for c, d := range row {
		if c%3 == 0 {
			fmt.Print(color.HiWhiteString(edge) + " ")
		}
		switch {
		case d == 0:
			fmt.Print(". ")
		case givenRow[c] == d:
			givenColor.Printf("%d ", d)
		default:
			solvedColor.Printf("%d ", d)
		}
	}
	color.HiWhite(edge)
}
