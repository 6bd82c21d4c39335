package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tumble/internal/config"
	"github.com/vovakirdan/tui-tumble/internal/core"
	"github.com/vovakirdan/tui-tumble/internal/registry"
	"github.com/vovakirdan/tui-tumble/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Recorder is implemented by games that can describe a finished run.
type Recorder interface {
	Record() storage.Run
}

// Resizer is implemented by games that adopt a new screen size without
// restarting the run.
type Resizer interface {
	Resize(w, h int)
}

// GameModel runs one game inside a Bubble Tea program.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	palette Palette
	config  core.RuntimeConfig
	keys    GameKeyMap
	help    help.Model

	input    core.InputFrame
	state    core.GameState
	quitting bool
	toMenu   bool
	saved    bool
	lastRun  string
}

// NewGameModel wraps game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, palette Palette, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW
	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:   store,
		logger:  logger,
		palette: palette,
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    h,
	}
}

func gameHeight(screenH int) int {
	return max(screenH-helpHeight, 0)
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	return tickCmd(m.config.TickRate)
}

// Update handles keys, resizes and frame ticks.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		// Mid-run the first press only pauses.
		if m.state.GameOver || m.state.Paused {
			m.toMenu = true
			return m, nil
		}
		m.input.Set(core.ActionPause)
		return m, nil
	}

	m.input.Set(m.keys.Action(msg))
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, h)
	} else if !m.state.GameOver {
		cfg := m.config
		cfg.ScreenH = h
		m.game.Reset(cfg)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.toMenu {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	switch {
	case m.state.GameOver && !m.saved && m.state.Score > 0:
		m.saveRun()
	case !m.state.GameOver:
		m.saved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run once. Failures are logged and play
// continues.
func (m *GameModel) saveRun() {
	m.saved = true
	if m.store == nil {
		return
	}
	rec, ok := m.game.(Recorder)
	if !ok {
		return
	}
	run := rec.Record()
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("failed to save run", "err", err)
		return
	}
	m.lastRun = id
	m.logger.Info("run saved", "id", id, "outcome", run.Outcome, "moves", run.Moves, "level", run.LevelReached)
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := config.Path("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View draws the game and the key help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.palette.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting reports whether the player asked to leave the program.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the player asked to return to the menu.
func (m GameModel) BackToMenu() bool { return m.toMenu }

// State returns the game state after the last frame.
func (m GameModel) State() core.GameState { return m.state }

// LastRunID returns the storage ID of the last saved run, if any.
func (m GameModel) LastRunID() string { return m.lastRun }

// Game returns the wrapped game.
func (m GameModel) Game() registry.Game { return m.game }
