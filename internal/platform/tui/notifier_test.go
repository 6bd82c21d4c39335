package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tumble/internal/config"
	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
)

type startCall struct {
	name string
	args []string
}

func newTestNotifier(cfg config.AudioConfig, bell *bytes.Buffer, startErr error) (*Notifier, *[]startCall) {
	calls := &[]startCall{}
	n := NewNotifier(cfg, "/sounds", bell, nil)
	n.start = func(name string, args ...string) error {
		*calls = append(*calls, startCall{name: name, args: args})
		return startErr
	}
	return n, calls
}

func TestNotifierCues(t *testing.T) {
	cfg := config.DefaultTumbleConfig().Audio
	cfg.GameWon = "/abs/win.wav"

	tests := []struct {
		name     string
		fire     func(n *Notifier)
		expected string
	}{
		{
			name:     "level cleared",
			fire:     func(n *Notifier) { n.LevelAdvanced(tumblecore.Event{Level: 1, Outcome: tumblecore.LevelCleared}) },
			expected: filepath.Join("/sounds", cfg.LevelClear),
		},
		{
			name:     "lost",
			fire:     func(n *Notifier) { n.GameEnded(tumblecore.Event{Level: 2, Outcome: tumblecore.Lost}) },
			expected: filepath.Join("/sounds", cfg.GameOver),
		},
		{
			name:     "won uses absolute path as is",
			fire:     func(n *Notifier) { n.GameEnded(tumblecore.Event{Level: 3, Outcome: tumblecore.Won}) },
			expected: "/abs/win.wav",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var bell bytes.Buffer
			n, calls := newTestNotifier(cfg, &bell, nil)
			tc.fire(n)

			if assert.Len(t, *calls, 1) {
				assert.Equal(t, cfg.Player, (*calls)[0].name)
				assert.Equal(t, []string{tc.expected}, (*calls)[0].args)
			}
			assert.Equal(t, "\a", bell.String())
		})
	}
}

func TestNotifierDisabled(t *testing.T) {
	cfg := config.DefaultTumbleConfig().Audio
	cfg.Enabled = false

	var bell bytes.Buffer
	n, calls := newTestNotifier(cfg, &bell, nil)
	n.GameEnded(tumblecore.Event{Outcome: tumblecore.Lost})

	assert.Empty(t, *calls)
	assert.Zero(t, bell.Len())
}

func TestNotifierBellOnly(t *testing.T) {
	cfg := config.DefaultTumbleConfig().Audio
	cfg.Player = ""

	var bell bytes.Buffer
	n, calls := newTestNotifier(cfg, &bell, nil)
	n.LevelAdvanced(tumblecore.Event{Level: 1})
	n.LevelAdvanced(tumblecore.Event{Level: 2})

	assert.Empty(t, *calls)
	assert.Equal(t, "\a\a", bell.String())
}

func TestNotifierMissingPlayerLogsOnce(t *testing.T) {
	cfg := config.DefaultTumbleConfig().Audio
	cfg.Bell = false

	var out bytes.Buffer
	logger := log.New(&out)
	logger.SetLevel(log.DebugLevel)

	n := NewNotifier(cfg, "/sounds", nil, logger)
	n.start = func(string, ...string) error { return errors.New("executable file not found") }

	n.LevelAdvanced(tumblecore.Event{Level: 1})
	n.GameEnded(tumblecore.Event{Outcome: tumblecore.Lost})

	assert.Equal(t, 1, strings.Count(out.String(), "sound cue unavailable"))
}

func TestLogListener(t *testing.T) {
	var out bytes.Buffer
	l := NewLogListener(log.New(&out))

	l.LevelAdvanced(tumblecore.Event{Level: 1, Score: 26, Outcome: tumblecore.LevelCleared})
	l.GameEnded(tumblecore.Event{Level: 2, Score: 30, Outcome: tumblecore.Lost})

	got := out.String()
	assert.Contains(t, got, "level cleared")
	assert.Contains(t, got, "moves=26")
	assert.Contains(t, got, "game ended")
	assert.Contains(t, got, "outcome=lost")
}
