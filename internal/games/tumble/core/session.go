package core

import "fmt"

// DefaultStepDegrees is how far a tumble advances per frame.
const DefaultStepDegrees = 10.0

// quarterTurn is the angle at which a tumble lands.
const quarterTurn = 90.0

// BoardLoader returns the board for a 1-based level number.
type BoardLoader func(level int) (*TileGrid, error)

// Options configures a Session. The zero value starts at level 1 with the
// built-in boards, a 10 degree step and no move buffering.
type Options struct {
	StartLevel  int
	StepDegrees float64
	// BufferMoves holds one command issued mid-tumble and starts it after
	// landing. When false such commands are dropped.
	BufferMoves bool
	Listener    Listener
	Loader      BoardLoader
}

// Session owns the board, the block and the progression state of one run.
// It is not safe for concurrent use; a single driver calls Command and
// Advance and may read state between calls.
type Session struct {
	opts     Options
	listener Listener
	boards   [LevelCount + 1]*TileGrid // immutable tables, by level

	level    int
	grid     *TileGrid
	block    Block
	score    int
	switchOn bool
	outcome  Outcome
	pending  Direction
	landing  Landing
	moves    []Direction
}

// NewSession loads every board from the start level onward and spawns the
// block. Bad level data is reported here rather than mid-game.
func NewSession(opts Options) (*Session, error) {
	if opts.StartLevel == 0 {
		opts.StartLevel = 1
	}
	if opts.StartLevel < 1 || opts.StartLevel > LevelCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, opts.StartLevel)
	}
	if opts.StepDegrees <= 0 || opts.StepDegrees > quarterTurn {
		opts.StepDegrees = DefaultStepDegrees
	}
	if opts.Loader == nil {
		opts.Loader = Load
	}

	s := &Session{opts: opts, listener: opts.Listener}
	if s.listener == nil {
		s.listener = nopListener{}
	}
	for level := opts.StartLevel; level <= LevelCount; level++ {
		g, err := opts.Loader(level)
		if err != nil {
			return nil, fmt.Errorf("loading level %d: %w", level, err)
		}
		s.boards[level] = g
	}
	s.Reset()
	return s, nil
}

// Reset starts the run over from the configured start level.
func (s *Session) Reset() {
	s.score = 0
	s.outcome = Playing
	s.moves = nil
	s.enterLevel(s.opts.StartLevel)
}

// enterLevel installs a fresh copy of the level's board and respawns the block.
func (s *Session) enterLevel(level int) {
	s.level = level
	s.grid = s.boards[level].Clone()
	s.block = SpawnBlock()
	s.switchOn = false
	s.pending = DirNone
	s.landing = Landing{}
}

// Command requests a tumble. It starts immediately when the block is idle
// and the session is playing. Mid-tumble it is buffered (if enabled and the
// buffer is empty) or dropped. Reports whether the command was taken.
func (s *Session) Command(dir Direction) bool {
	if !dir.Valid() || s.outcome != Playing {
		return false
	}
	if !s.block.Phase.Idle() {
		if s.opts.BufferMoves && s.pending == DirNone {
			s.pending = dir
			return true
		}
		return false
	}
	s.block.Phase = Phase{Dir: dir}
	return true
}

// Advance runs one frame: it moves the tumble animation forward and, when
// the quarter turn completes, lands the block and applies the rules.
func (s *Session) Advance() {
	if s.outcome != Playing {
		return
	}
	if s.block.Phase.Idle() {
		if s.pending == DirNone {
			return
		}
		s.block.Phase = Phase{Dir: s.pending}
		s.pending = DirNone
	}

	s.block.Phase.Angle += s.opts.StepDegrees
	if s.block.Phase.Angle >= quarterTurn {
		s.land()
	}
}

// land applies the transform for the in-flight tumble and evaluates it.
func (s *Session) land() {
	dir := s.block.Phase.Dir
	s.block.Tumble(dir)
	s.moves = append(s.moves, dir)
	s.score++

	s.landing = Evaluate(s.grid, s.block.Extent, s.block.Center)
	switch s.landing.Outcome {
	case Lost:
		s.finish(Lost)
	case LevelCleared:
		s.clearLevel()
	default:
		if s.landing.Toggle {
			s.switchOn = !s.switchOn
		}
	}
}

// clearLevel resolves LevelCleared into the next level or a win.
func (s *Session) clearLevel() {
	if s.level >= LevelCount {
		s.finish(Won)
		return
	}
	cleared := s.level
	s.enterLevel(s.level + 1)
	s.listener.LevelAdvanced(Event{Level: cleared, Score: s.score, Outcome: LevelCleared})
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.pending = DirNone
	s.listener.GameEnded(Event{Level: s.level, Score: s.score, Outcome: o})
}

// Level returns the current level (1-based).
func (s *Session) Level() int { return s.level }

// Score returns the number of completed tumbles.
func (s *Session) Score() int { return s.score }

// SwitchOn reports the switch flag.
func (s *Session) SwitchOn() bool { return s.switchOn }

// Outcome returns Playing, Lost or Won.
func (s *Session) Outcome() Outcome { return s.outcome }

// Block returns a copy of the block state.
func (s *Session) Block() Block { return s.block }

// Grid returns the active board. Callers must not modify it.
func (s *Session) Grid() *TileGrid { return s.grid }

// LastLanding returns the evaluation of the most recent landing on this
// level, or a zero Landing if none happened yet.
func (s *Session) LastLanding() Landing { return s.landing }

// Pending returns the buffered command, if any.
func (s *Session) Pending() Direction { return s.pending }

// Moves returns the tumbles completed so far across all levels.
func (s *Session) Moves() []Direction {
	out := make([]Direction, len(s.moves))
	copy(out, s.moves)
	return out
}

// Busy reports whether a tumble is in flight.
func (s *Session) Busy() bool { return !s.block.Phase.Idle() }

// StartLevel returns the level the run began at.
func (s *Session) StartLevel() int { return s.opts.StartLevel }
