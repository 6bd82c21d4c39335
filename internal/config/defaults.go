package config

import (
	_ "embed"
)

//go:embed defaults/tumble.yaml
var defaultTumbleYAML []byte

// DefaultTumbleConfig returns the built-in configuration.
func DefaultTumbleConfig() TumbleConfig {
	return TumbleConfig{
		Animation: AnimationConfig{
			StepDegrees: 10,
			TickRate:    60,
		},
		Input: InputConfig{
			BufferMoves: false,
		},
		Session: SessionConfig{
			StartLevel: 1,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Player:     "play",
			LevelClear: "stage_clear.wav",
			GameOver:   "gameover.wav",
			GameWon:    "world_clear.wav",
			Bell:       true,
		},
	}
}
