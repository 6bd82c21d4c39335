package core

import "testing"

// floorLayout returns a board of floor tiles with the given overrides.
func floorLayout(overrides map[Cell]Tile) Layout {
	var l Layout
	for col := range GridSize {
		for row := range GridSize {
			l[col][row] = int(TileFloor)
		}
	}
	for c, t := range overrides {
		l[c.Col][c.Row] = int(t)
	}
	return l
}

// customFirstLevel serves layout as level 1 and the built-in boards after it.
func customFirstLevel(layout Layout) BoardLoader {
	return func(level int) (*TileGrid, error) {
		if level == 1 {
			return NewGrid(level, layout)
		}
		return Load(level)
	}
}

// recordingListener counts notifications.
type recordingListener struct {
	advanced []Event
	ended    []Event
}

func (r *recordingListener) LevelAdvanced(ev Event) { r.advanced = append(r.advanced, ev) }
func (r *recordingListener) GameEnded(ev Event)     { r.ended = append(r.ended, ev) }

// roll issues each move and advances frames until the block lands.
func roll(t *testing.T, s *Session, moves ...Direction) {
	t.Helper()
	for _, d := range moves {
		if !s.Command(d) {
			t.Fatalf("command %s rejected (outcome %s, level %d, score %d)", d, s.Outcome(), s.Level(), s.Score())
		}
		for s.Busy() {
			s.Advance()
		}
	}
}

func newTestSession(t *testing.T, layout Layout, l Listener) *Session {
	t.Helper()
	s, err := NewSession(Options{Loader: customFirstLevel(layout), Listener: l})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}
