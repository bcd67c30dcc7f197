package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/crunch/internal/match3"
)

// LoadCrunch loads the game configuration. Values missing from a file keep
// their defaults.
// Search order: customPath -> ~/.crunch/configs/crunch.yaml -> ./configs/crunch.yaml -> embedded default
func LoadCrunch(customPath string) (CrunchConfig, error) {
	cfg := DefaultCrunchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crunch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultCrunchConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "crunch.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultCrunchConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrunchYAML, &cfg); err != nil {
		return DefaultCrunchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crunch", "configs", filename)
}

// Validate checks that every value is usable.
func (c CrunchConfig) Validate() error {
	if c.Board.PieceTypes < 2 || c.Board.PieceTypes > match3.MaxPieceTypes {
		return fmt.Errorf("board.piece_types must be in [2,%d], got %d", match3.MaxPieceTypes, c.Board.PieceTypes)
	}
	if c.Board.MaxShuffleAttempts < 1 {
		return fmt.Errorf("board.max_shuffle_attempts must be positive, got %d", c.Board.MaxShuffleAttempts)
	}
	switch c.Display.Theme {
	case ThemeClassic, ThemeMono:
	default:
		return fmt.Errorf("display.theme %q is not one of %s, %s", c.Display.Theme, ThemeClassic, ThemeMono)
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > 120 {
		return fmt.Errorf("display.tick_rate must be in [1,120], got %d", c.Display.TickRate)
	}
	if c.Display.FlashTicks < 0 {
		return fmt.Errorf("display.flash_ticks must not be negative, got %d", c.Display.FlashTicks)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// EngineConfig converts the board section into an engine configuration.
func (c CrunchConfig) EngineConfig(seed int64) match3.Config {
	return match3.Config{
		PieceTypes:         c.Board.PieceTypes,
		MaxShuffleAttempts: c.Board.MaxShuffleAttempts,
		Seed:               seed,
	}
}
