package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tumble/internal/core"
	"github.com/vovakirdan/tui-tumble/internal/registry"
	"github.com/vovakirdan/tui-tumble/internal/storage"
)

// GameFactory creates a game starting at level. Zero means the configured
// start level.
type GameFactory func(level int) registry.Game

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store   *storage.Store // may be nil
	Logger  *log.Logger    // may be nil
	Palette Palette
	Runtime core.RuntimeConfig
	NewGame GameFactory
	// StartLevel skips the menu and starts a run at this level when > 0.
	StartLevel int
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is the top-level model for both local play and SSH
// sessions: menu, game and scoreboard in one program.
type SessionModel struct {
	opts     SessionOptions
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates the session.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := SessionModel{
		opts:   opts,
		config: opts.Runtime,
		menu:   NewMenuModel(opts.Store, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
	if opts.StartLevel > 0 {
		m.openGame(opts.StartLevel)
	}
	return m
}

// Init starts the first screen.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	sel := m.menu.Selected()
	if sel == nil {
		return m, cmd
	}
	switch sel.Choice {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	case ChoicePlay:
		m.openGame(sel.Level)
		return m, m.game.Init()
	}
	return m, cmd
}

func (m *SessionModel) openGame(level int) {
	game := m.opts.NewGame(level)
	gm := NewGameModel(game, m.opts.Store, m.opts.Logger, m.opts.Palette, m.config)
	m.game = &gm
	m.screen = screenGame
	m.opts.Logger.Debug("game started", "level", level)
}

func (m *SessionModel) openMenu() tea.Cmd {
	m.menu = NewMenuModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenMenu
	return m.menu.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	if gm.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if gm.BackToMenu() {
		m.game = nil
		return m, m.openMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m, m.openMenu()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a game is on screen.
func (m SessionModel) InGame() bool { return m.screen == screenGame }

// Game returns the active game model, or nil outside a game.
func (m SessionModel) Game() *GameModel { return m.game }

// Run starts a full-screen session on the local terminal.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
