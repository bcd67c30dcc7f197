package config

import (
	_ "embed"
)

//go:embed defaults/crunch.yaml
var defaultCrunchYAML []byte

// DefaultCrunchConfig returns the default configuration.
func DefaultCrunchConfig() CrunchConfig {
	return CrunchConfig{
		Board: BoardConfig{
			PieceTypes:         6,
			MaxShuffleAttempts: 100,
			Level:              "Level_0",
		},
		Display: DisplayConfig{
			Theme:      ThemeClassic,
			TickRate:   30,
			FlashTicks: 12,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrunchYAML
}
