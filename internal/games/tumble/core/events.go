package core

// Event is delivered to listeners on level and game transitions.
type Event struct {
	Level   int     // level that was cleared, or where the game ended
	Score   int     // moves so far
	Outcome Outcome // LevelCleared, Won or Lost
}

// Listener receives session notifications. Each method is called
// synchronously from Session.Advance.
type Listener interface {
	// LevelAdvanced fires once per cleared level that is followed by another.
	LevelAdvanced(ev Event)
	// GameEnded fires once when the session becomes Won or Lost.
	GameEnded(ev Event)
}

// Listeners fans notifications out to several listeners in order.
type Listeners []Listener

func (ls Listeners) LevelAdvanced(ev Event) {
	for _, l := range ls {
		l.LevelAdvanced(ev)
	}
}

func (ls Listeners) GameEnded(ev Event) {
	for _, l := range ls {
		l.GameEnded(ev)
	}
}

type nopListener struct{}

func (nopListener) LevelAdvanced(Event) {}
func (nopListener) GameEnded(Event)     {}
