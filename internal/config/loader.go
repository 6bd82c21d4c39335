package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "tumble.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Supported ranges.
const (
	MaxTickRate = 240
	MaxLevel    = 3
)

// Load loads the tumble configuration.
// Search order: customPath -> ~/.tumble/configs/tumble.yaml -> ./configs/tumble.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (TumbleConfig, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{filepath.Join("configs", FileName)}
	if dir := Dir(); dir != "" {
		candidates = append([]string{filepath.Join(dir, "configs", FileName)}, candidates...)
	}
	for _, path := range candidates {
		// Unreadable or broken fallbacks are skipped, not fatal.
		if cfg, err := readFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultTumbleYAML)
	if err != nil {
		return DefaultTumbleConfig(), nil
	}
	return cfg, nil
}

func readFile(path string) (TumbleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TumbleConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the defaults.
func parse(data []byte) (TumbleConfig, error) {
	cfg := DefaultTumbleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TumbleConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c TumbleConfig) Validate() error {
	switch {
	case c.Animation.StepDegrees <= 0 || c.Animation.StepDegrees > 90:
		return fmt.Errorf("%w: animation.step_degrees %v not in (0, 90]", ErrInvalid, c.Animation.StepDegrees)
	case c.Animation.TickRate < 1 || c.Animation.TickRate > MaxTickRate:
		return fmt.Errorf("%w: animation.tick_rate %d not in [1, %d]", ErrInvalid, c.Animation.TickRate, MaxTickRate)
	case c.Session.StartLevel < 1 || c.Session.StartLevel > MaxLevel:
		return fmt.Errorf("%w: session.start_level %d not in [1, %d]", ErrInvalid, c.Session.StartLevel, MaxLevel)
	case c.Audio.Enabled && c.Audio.Player == "" && !c.Audio.Bell:
		return fmt.Errorf("%w: audio enabled without a player or bell", ErrInvalid)
	}
	return nil
}

// FramesPerTumble returns how many frames a single tumble takes.
func (c TumbleConfig) FramesPerTumble() int {
	n := int(90 / c.Animation.StepDegrees)
	if float64(n)*c.Animation.StepDegrees < 90 {
		n++
	}
	return n
}

// Dir returns ~/.tumble, or "" if the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tumble")
}

// Path joins name onto Dir, falling back to the working directory.
func Path(name string) string {
	dir := Dir()
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
