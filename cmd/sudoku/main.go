// Command sudoku reads a puzzle from standard input and solves it with
// the Dancing Links engine.
//
// Input is 81 cells in row-major order, as nine lines or one line;
// whitespace is skipped, and any other byte outside '1'..'9' marks an
// empty cell.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/dlx/sudoku"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter the puzzle as 9 lines of 9 characters.")
		fmt.Println("Use any non-space character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	g, err := sudoku.Parse(readAll())
	if err != nil {
		fatalError(err.Error())
	}

	fmt.Printf("\npuzzle (%d clues):\n", g.Clues())
	sudoku.Print(g, g)

	solved, ok := sudoku.Solve(g)
	if !ok {
		fatalError("puzzle has no solution")
	}

	fmt.Println("\nsolution:")
	sudoku.Print(solved, g)

	if sudoku.Count(g, 2) > 1 {
		color.HiYellow("\nnote: the puzzle has more than one solution")
	}
}

func readAll() string {
	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		fatalError("error reading standard input: " + err.Error())
	}

	return sb.String()
}

func fatalError(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
