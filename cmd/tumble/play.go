package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tumble/internal/config"
	"github.com/vovakirdan/tui-tumble/internal/core"
	"github.com/vovakirdan/tui-tumble/internal/games/tumble"
	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
	"github.com/vovakirdan/tui-tumble/internal/platform/tui"
	"github.com/vovakirdan/tui-tumble/internal/registry"
	"github.com/vovakirdan/tui-tumble/internal/storage"
)

var (
	flagLevel  int
	flagBuffer bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tumble in this terminal",
	Long: `Open the level menu, or start a run directly with --level.

Controls:
  Arrows/WASD  - Tumble left, right, forward, back
  H            - Hint (next move of a shortest solution)
  P            - Pause
  R            - Restart (after the run ends)
  Esc          - Pause, then back to menu
  Ctrl+S       - Save a screenshot to ~/.tumble/screenshots
  Q/Ctrl+C     - Quit

The game logs to ~/.tumble/tumble.log.

Examples:
  tumble play
  tumble play --level 2
  tumble play --buffer-moves
  tumble play --config ./my-tumble.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start a run at this level (skips the menu)")
	playCmd.Flags().BoolVar(&flagBuffer, "buffer-moves", false, "Queue one move pressed mid-tumble instead of dropping it")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	if cmd.Flags().Changed("buffer-moves") {
		cfg.Input.BufferMoves = flagBuffer
	}
	if flagLevel < 0 || flagLevel > tumblecore.LevelCount {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", tumblecore.LevelCount)
		os.Exit(1)
	}

	logger, closeLog, err := openLogFile(config.Path("tumble.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = log.New(os.Stderr)
		closeLog = func() {}
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Play without storage.
		store = nil
	} else {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	listener := tumblecore.Listeners{
		tui.NewLogListener(logger),
		tui.NewNotifier(cfg.Audio, config.Path("sounds"), os.Stdout, logger),
	}
	newGame := func(level int) registry.Game {
		return tumble.New(tumble.Settings{Config: cfg, StartLevel: level, Listener: listener})
	}

	logger.Info("starting", "level", flagLevel, "tick_rate", cfg.Animation.TickRate, "step_degrees", cfg.Animation.StepDegrees)
	runErr := tui.Run(tui.SessionOptions{
		Store:   store,
		Logger:  logger,
		Palette: tui.DefaultPalette(),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Animation.TickRate,
		},
		NewGame:    newGame,
		StartLevel: flagLevel,
	})
	if runErr != nil {
		logger.Error("game error", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile appends to path, creating its directory.
func openLogFile(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tumble",
		Level:           logLevel(),
	})
	return logger, func() { f.Close() }, nil
}
