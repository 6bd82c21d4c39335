package tumble

import "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	SwitchOn    bool
	Outcome     string
	Orientation string
	Center      core.Vec3
	Angle       float64
	Moves       string
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick}
	}
	b := g.session.Block()
	return Snapshot{
		Tick:        g.tick,
		Level:       g.session.Level(),
		Score:       g.session.Score(),
		SwitchOn:    g.session.SwitchOn(),
		Outcome:     g.session.Outcome().String(),
		Orientation: b.Extent.Orientation().String(),
		Center:      b.Center,
		Angle:       b.Phase.Angle,
		Moves:       core.FormatMoves(g.session.Moves()),
		Paused:      g.paused,
	}
}
