// Package tumble adapts the block-tumbling engine to the platform Game
// interface: it maps input actions to tumble commands, paces the animation
// one step per frame and draws the board.
package tumble

import (
	"github.com/vovakirdan/tui-tumble/internal/config"
	platformcore "github.com/vovakirdan/tui-tumble/internal/core"
	"github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
	"github.com/vovakirdan/tui-tumble/internal/registry"
)

// ID is the registry and storage identifier of the game.
const ID = "tumble"

// Minimum screen size: HUD, boxed board and a status line.
const (
	minWidth  = core.GridSize*cellWidth + 4
	minHeight = core.GridSize + hudHeight + 4
)

// Settings configures a Game before its first Reset.
type Settings struct {
	Config config.TumbleConfig
	// StartLevel overrides Config.Session.StartLevel when non-zero.
	StartLevel int
	// Listener receives level and game transitions; may be nil.
	Listener core.Listener
	// Loader replaces the built-in boards; may be nil.
	Loader core.BoardLoader
}

// DefaultSettings uses the built-in configuration.
func DefaultSettings() Settings {
	return Settings{Config: config.DefaultTumbleConfig()}
}

// Game is the platform adapter around a core.Session.
type Game struct {
	settings Settings
	session  *core.Session
	err      error

	tick     uint64
	screenW  int
	screenH  int
	tickRate int
	paused   bool
	tooSmall bool

	level       int
	bannerLevel int // level just cleared, shown while bannerTicks > 0
	bannerTicks int
	hint        core.Direction
	hintTicks   int
}

// New creates a game with the given settings.
func New(s Settings) *Game {
	return &Game{settings: s}
}

// Factory returns a registry factory producing games with s.
func Factory(s Settings) registry.Factory {
	return func() registry.Game { return New(s) }
}

func init() {
	registry.Register(ID, Factory(DefaultSettings()))
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tumble" }

// Reset starts a new run from the configured start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.tick = 0
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = g.settings.Config.Animation.TickRate
	}
	g.paused = false
	g.bannerTicks = 0
	g.hintTicks = 0
	g.checkScreenSize()

	start := g.settings.StartLevel
	if start == 0 {
		start = g.settings.Config.Session.StartLevel
	}
	g.session, g.err = core.NewSession(core.Options{
		StartLevel:  start,
		StepDegrees: g.settings.Config.Animation.StepDegrees,
		BufferMoves: g.settings.Config.Input.BufferMoves,
		Listener:    g.settings.Listener,
		Loader:      g.settings.Loader,
	})
	if g.err == nil {
		g.level = g.session.Level()
	}
}

// Resize updates the screen size between frames.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

// directionFor maps tumble actions to engine directions, in priority order.
var directionFor = []struct {
	action platformcore.Action
	dir    core.Direction
}{
	{platformcore.ActionTumbleLeft, core.DirLeft},
	{platformcore.ActionTumbleRight, core.DirRight},
	{platformcore.ActionTumbleForward, core.DirForward},
	{platformcore.ActionTumbleBack, core.DirBack},
}

// Step advances one frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.session == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	over := g.session.Outcome().Terminal()
	if in.Has(platformcore.ActionRestart) && over {
		g.restart()
		return platformcore.StepResult{State: g.State(), LevelChanged: true}
	}
	if in.Has(platformcore.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.countDown()
	if in.Has(platformcore.ActionHint) {
		if d, ok := core.Hint(g.session); ok {
			g.hint = d
			g.hintTicks = 2 * g.tickRate
		}
	}
	for _, m := range directionFor {
		if in.Has(m.action) {
			if g.session.Command(m.dir) {
				g.hintTicks = 0
			}
			break
		}
	}

	g.session.Advance()

	changed := g.session.Level() != g.level
	if changed {
		g.bannerLevel = g.level
		g.bannerTicks = g.tickRate * 3 / 2
		g.level = g.session.Level()
	}
	return platformcore.StepResult{State: g.State(), LevelChanged: changed}
}

func (g *Game) countDown() {
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}
	if g.hintTicks > 0 {
		g.hintTicks--
	}
}

// restart begins a new run on the same session, keeping the listener.
func (g *Game) restart() {
	g.session.Reset()
	g.level = g.session.Level()
	g.paused = false
	g.bannerTicks = 0
	g.hintTicks = 0
}

// State returns the platform view of the run.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: true}
	}
	o := g.session.Outcome()
	return platformcore.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: o.Terminal(),
		Won:      o == core.Won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the engine for read-only inspection.
func (g *Game) Session() *core.Session { return g.session }

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error { return g.err }
