package config

import (
	"fmt"
	"strings"
)

// ParseDifficulty converts a preset name. An empty name means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// PieceTypesForPreset returns the number of piece types a preset plays with.
// Fewer types make runs easier to form.
func PieceTypesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 6
	default:
		return 5
	}
}

// ApplyDifficultyPreset modifies the config based on a difficulty preset.
func ApplyDifficultyPreset(cfg *CrunchConfig, preset DifficultyPreset) {
	cfg.Board.PieceTypes = PieceTypesForPreset(preset)

	if preset == DifficultyHard && cfg.Board.MaxShuffleAttempts < 200 {
		cfg.Board.MaxShuffleAttempts = 200
	}
}
