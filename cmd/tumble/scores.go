package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tumble/internal/games/tumble"
	"github.com/vovakirdan/tui-tumble/internal/registry"
	"github.com/vovakirdan/tui-tumble/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best and recent runs",
	Long: `Display the fewest-move winning runs, or the latest runs with --recent.

Examples:
  tumble scores
  tumble scores --recent --limit 20
  tumble scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best wins")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
}

func runScores(_ *cobra.Command, _ []string) {
	game, err := registry.Create(tumble.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(tumble.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	var runs []storage.Run
	heading := "Best wins"
	if flagRecent {
		heading = "Recent runs"
		runs, err = store.RecentRuns(tumble.ID, flagLimit)
	} else {
		runs, err = store.BestRuns(tumble.ID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n\n", heading, game.Title())
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tumble play' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %s\n", "Rank", "Moves", "Result", "Levels", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "----")
	for i, r := range runs {
		levels := fmt.Sprintf("%d-%d", r.StartLevel, r.LevelReached)
		fmt.Printf("  %-4d  %-5d  %-6s  %-6s  %s\n", i+1, r.Moves, r.Outcome, levels, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(tumble.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Avg moves: %.1f\n", stats.Runs, stats.Wins, stats.AvgMoves)
	}
}
