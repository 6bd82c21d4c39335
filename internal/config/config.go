// Package config loads the YAML game configuration for tumble.
package config

// TumbleConfig is the full game configuration.
type TumbleConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Session   SessionConfig   `yaml:"session"`
	Audio     AudioConfig     `yaml:"audio"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// AnimationConfig controls tumble pacing.
type AnimationConfig struct {
	StepDegrees float64 `yaml:"step_degrees"` // rotation per frame
	TickRate    int     `yaml:"tick_rate"`    // frames per second
}

// InputConfig controls how moves issued mid-tumble are handled.
type InputConfig struct {
	BufferMoves bool `yaml:"buffer_moves"` // hold one move instead of dropping it
}

// SessionConfig controls where a run begins.
type SessionConfig struct {
	StartLevel int `yaml:"start_level"`
}

// AudioConfig controls the sound cues played on level and game transitions.
type AudioConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Player     string `yaml:"player"` // external command that plays a wav file
	LevelClear string `yaml:"level_clear"`
	GameOver   string `yaml:"game_over"`
	GameWon    string `yaml:"game_won"`
	Bell       bool   `yaml:"bell"` // ring the terminal bell as well
}

// MetricsConfig controls the Prometheus endpoint of the SSH server.
type MetricsConfig struct {
	Address string `yaml:"address"` // empty disables the endpoint
}
