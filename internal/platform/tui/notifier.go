package tui

import (
	"io"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tumble/internal/config"
	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
)

// startFunc launches an external command without waiting for it.
type startFunc func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck // exit status of a sound cue is irrelevant
	return nil
}

// Notifier plays sound cues for level and game transitions. It never
// blocks the game: players are started in the background and failures are
// logged once at debug level.
type Notifier struct {
	cfg      config.AudioConfig
	soundDir string
	bell     io.Writer
	logger   *log.Logger
	start    startFunc

	warnOnce sync.Once
}

// NewNotifier creates a notifier. Relative sound files are looked up in
// soundDir. bell receives the terminal bell and may be nil.
func NewNotifier(cfg config.AudioConfig, soundDir string, bell io.Writer, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Notifier{
		cfg:      cfg,
		soundDir: soundDir,
		bell:     bell,
		logger:   logger,
		start:    startDetached,
	}
}

// LevelAdvanced implements tumblecore.Listener.
func (n *Notifier) LevelAdvanced(tumblecore.Event) {
	n.cue(n.cfg.LevelClear)
}

// GameEnded implements tumblecore.Listener.
func (n *Notifier) GameEnded(ev tumblecore.Event) {
	if ev.Outcome == tumblecore.Won {
		n.cue(n.cfg.GameWon)
		return
	}
	n.cue(n.cfg.GameOver)
}

func (n *Notifier) cue(file string) {
	if !n.cfg.Enabled {
		return
	}
	if n.cfg.Bell && n.bell != nil {
		_, _ = n.bell.Write([]byte("\a"))
	}
	if n.cfg.Player == "" || file == "" {
		return
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(n.soundDir, file)
	}
	if err := n.start(n.cfg.Player, file); err != nil {
		n.warnOnce.Do(func() {
			n.logger.Debug("sound cue unavailable", "player", n.cfg.Player, "err", err)
		})
	}
}

// LogListener writes level and game transitions to a logger.
type LogListener struct {
	logger *log.Logger
}

// NewLogListener creates a listener logging to logger.
func NewLogListener(logger *log.Logger) LogListener {
	return LogListener{logger: logger}
}

func (l LogListener) LevelAdvanced(ev tumblecore.Event) {
	l.logger.Info("level cleared", "level", ev.Level, "moves", ev.Score)
}

func (l LogListener) GameEnded(ev tumblecore.Event) {
	l.logger.Info("game ended", "outcome", ev.Outcome, "level", ev.Level, "moves", ev.Score)
}
