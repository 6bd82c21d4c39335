package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int // columns available to the game
	ScreenH  int // rows available to the game
	TickRate int // frames per second the platform drives Step at
}

// DefaultConfig returns an 80x24 screen at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Score    int
	Level    int
	GameOver bool // lost or won; the run accepts no more moves
	Won      bool
	Paused   bool
}

// StepResult is returned from every Step.
type StepResult struct {
	State GameState
	// LevelChanged is set on the frame a new level was entered.
	LevelChanged bool
}
