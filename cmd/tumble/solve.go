package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
)

var flagSolveLevel int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the shortest solution of each level",
	Long: `Search every reachable block position and print a shortest move
sequence from the spawn to the goal. Moves are written as letters:
L left, R right, F forward, B back.

Examples:
  tumble solve
  tumble solve --level 2`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveLevel, "level", 0, "Solve only this level")
}

func runSolve(_ *cobra.Command, _ []string) {
	total := 0
	for _, level := range selectedLevels(flagSolveLevel) {
		n, err := writeSolution(os.Stdout, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		total += n
	}
	if flagSolveLevel == 0 {
		fmt.Printf("\nCampaign: %d moves\n", total)
	}
}

// writeSolution prints the solution of level and returns its length.
func writeSolution(w io.Writer, level int) (int, error) {
	grid, err := tumblecore.Load(level)
	if err != nil {
		return 0, err
	}
	path, ok := tumblecore.Solve(grid, tumblecore.SpawnBlock())
	if !ok {
		return 0, fmt.Errorf("level %d has no solution", level)
	}
	fmt.Fprintf(w, "Level %d (%s): %d moves\n  %s\n", level, tumblecore.LevelName(level), len(path), tumblecore.FormatMoves(path))
	return len(path), nil
}
