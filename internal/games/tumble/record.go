package tumble

import (
	"github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
	"github.com/vovakirdan/tui-tumble/internal/storage"
)

// Record describes the current run for storage. It is meaningful once the
// run has ended.
func (g *Game) Record() storage.Run {
	if g.session == nil {
		return storage.Run{GameID: ID}
	}
	outcome := storage.OutcomeLost
	if g.session.Outcome() == core.Won {
		outcome = storage.OutcomeWon
	}
	return storage.Run{
		GameID:       ID,
		StartLevel:   g.session.StartLevel(),
		LevelReached: g.session.Level(),
		Outcome:      outcome,
		Moves:        g.session.Score(),
		Path:         core.FormatMoves(g.session.Moves()),
	}
}
