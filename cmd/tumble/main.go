// tumble is a terminal block-tumbling puzzle: roll a 1x1x2 block across
// three boards and drop it upright into the goal hole.
//
// Usage:
//
//	tumble play              - Pick a level from the menu and play
//	tumble play --level 2    - Start a run at level 2
//	tumble levels            - Print the boards
//	tumble solve             - Print the shortest solution of every level
//	tumble scores            - Show best and recent runs
//	tumble serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate from the config
//	--db <path>          - Set database path (default: ~/.tumble/scores.db)
//	--config <path>      - Use a custom tumble.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tumble/internal/config"
)

var (
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tumble",
	Short: "Tumble - roll the block into the hole",
	Long: `Tumble is a terminal puzzle game. Tip a 1x1x2 block across a 10x10
board, step on switches to open bridges, keep off thin ice while standing,
and drop the block upright into the goal hole. Fewer moves is better.

Available commands:
  play     - Play locally
  levels   - Print the built-in boards
  solve    - Print shortest solutions
  scores   - View best and recent runs
  serve    - Start SSH server for remote play

Examples:
  tumble play
  tumble play --level 3
  tumble solve --level 1
  tumble serve --ssh :2222 --metrics :9090`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tumble/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tumble.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the game configuration and applies flag overrides.
// It exits on invalid configuration.
func loadConfig() config.TumbleConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Animation.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// logLevel parses --log-level, exiting on an unknown name.
func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return level
}
