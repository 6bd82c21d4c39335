package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
)

var flagLevelsOnly int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the built-in boards",
	Long: `Print each board top-down, far row first.

Legend:
  #  floor     +  fragile (no standing)
  =  bridge    o  switch (opens bridges)
  G  goal      S  spawn
  .  void`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsOnly, "level", 0, "Print only this level")
}

func runLevels(_ *cobra.Command, _ []string) {
	for _, level := range selectedLevels(flagLevelsOnly) {
		grid, err := tumblecore.Load(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		writeBoard(os.Stdout, grid)
		fmt.Println()
	}
}

// selectedLevels returns [only] or every level when only is 0.
func selectedLevels(only int) []int {
	if only != 0 {
		return []int{only}
	}
	levels := make([]int, 0, tumblecore.LevelCount)
	for l := 1; l <= tumblecore.LevelCount; l++ {
		levels = append(levels, l)
	}
	return levels
}

var boardGlyphs = map[tumblecore.Tile]byte{
	tumblecore.TileVoid:    '.',
	tumblecore.TileFloor:   '#',
	tumblecore.TileFragile: '+',
	tumblecore.TileBridge:  '=',
	tumblecore.TileSwitch:  'o',
	tumblecore.TileGoal:    'G',
}

// writeBoard prints grid with the far row (highest row index) first.
func writeBoard(w io.Writer, grid *tumblecore.TileGrid) {
	spawn := tumblecore.CellAt(0, 0)
	fmt.Fprintf(w, "Level %d: %s\n", grid.Level(), tumblecore.LevelName(grid.Level()))

	var line strings.Builder
	for row := tumblecore.GridSize - 1; row >= 0; row-- {
		line.Reset()
		line.WriteString("  ")
		for col := range tumblecore.GridSize {
			c := tumblecore.Cell{Col: col, Row: row}
			ch := boardGlyphs[grid.TileAt(c)]
			if c == spawn {
				ch = 'S'
			}
			line.WriteByte(ch)
			line.WriteByte(' ')
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
