package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tumble/internal/core"
	"github.com/vovakirdan/tui-tumble/internal/games/tumble"
	"github.com/vovakirdan/tui-tumble/internal/registry"
)

type factoryRecorder struct {
	levels []int
}

func (f *factoryRecorder) newGame(level int) registry.Game {
	f.levels = append(f.levels, level)
	s := tumble.DefaultSettings()
	s.StartLevel = level
	return tumble.New(s)
}

func newTestSession(t *testing.T, startLevel int) (SessionModel, *factoryRecorder) {
	t.Helper()
	f := &factoryRecorder{}
	m := NewSessionModel(SessionOptions{
		Store:      openTestStore(t),
		Palette:    asciiPalette(),
		Runtime:    core.DefaultConfig(),
		NewGame:    f.newGame,
		StartLevel: startLevel,
	})
	m.Init()
	return m, f
}

func sendSession(m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSessionCampaignFromMenu(t *testing.T) {
	m, f := newTestSession(t, 0)
	require.False(t, m.InGame())
	assert.Contains(t, m.View(), "T U M B L E")

	m, cmd := sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame())
	assert.NotNil(t, cmd)
	assert.Equal(t, []int{0}, f.levels)

	m, _ = sendSession(m, TickMsg{})
	assert.Equal(t, 1, m.Game().State().Level)
}

func TestSessionLevelSelect(t *testing.T) {
	m, f := newTestSession(t, 0)

	down := tea.KeyMsg{Type: tea.KeyDown}
	m, _ = sendSession(m, down, down, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})

	require.True(t, m.InGame())
	assert.Equal(t, []int{2}, f.levels)
	assert.Equal(t, 2, m.Game().State().Level)
}

func TestSessionBackToMenu(t *testing.T) {
	m, _ := newTestSession(t, 0)
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, esc, TickMsg{}, esc)
	assert.False(t, m.InGame())
	assert.Nil(t, m.Game())
	assert.Contains(t, m.View(), "Play campaign")
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m, _ := newTestSession(t, 0)

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "SCORES")

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "Play campaign")
}

func TestSessionQuitFromMenu(t *testing.T) {
	m, _ := newTestSession(t, 0)
	m, cmd := sendSession(m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionDirectStart(t *testing.T) {
	m, f := newTestSession(t, 3)
	require.True(t, m.InGame())
	assert.Equal(t, []int{3}, f.levels)

	m, _ = sendSession(m, TickMsg{})
	assert.Equal(t, 3, m.Game().State().Level)
}
