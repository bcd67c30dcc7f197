// Package config provides YAML-based configuration loading and difficulty
// presets for crunch.
package config

// CrunchConfig contains all configuration for the game.
type CrunchConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines engine parameters.
type BoardConfig struct {
	PieceTypes         int    `yaml:"piece_types"`          // 2..6
	MaxShuffleAttempts int    `yaml:"max_shuffle_attempts"` // fills tried before giving up
	Level              string `yaml:"level"`                // level played when none is given
}

// DisplayConfig defines terminal presentation parameters.
type DisplayConfig struct {
	Theme      string `yaml:"theme"`       // "classic" or "mono"
	TickRate   int    `yaml:"tick_rate"`   // ticks per second
	FlashTicks int    `yaml:"flash_ticks"` // how long a rejected swap flashes
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Theme names.
const (
	ThemeClassic = "classic"
	ThemeMono    = "mono"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
