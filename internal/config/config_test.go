package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg CrunchConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultCrunchConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultCrunchConfig %+v", cfg, DefaultCrunchConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadCrunchCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crunch.yaml")
	data := []byte("board:\n  piece_types: 4\ndisplay:\n  theme: mono\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrunch(path)
	if err != nil {
		t.Fatalf("LoadCrunch failed: %v", err)
	}
	if cfg.Board.PieceTypes != 4 || cfg.Display.Theme != ThemeMono {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unset values keep their defaults.
	if cfg.Board.MaxShuffleAttempts != 100 || cfg.Display.TickRate != 30 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCrunchCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCrunch(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrunch(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  piece_types: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrunch(invalid); err == nil {
		t.Error("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CrunchConfig)
		valid  bool
	}{
		{"defaults", func(*CrunchConfig) {}, true},
		{"two types", func(c *CrunchConfig) { c.Board.PieceTypes = 2 }, true},
		{"one type", func(c *CrunchConfig) { c.Board.PieceTypes = 1 }, false},
		{"seven types", func(c *CrunchConfig) { c.Board.PieceTypes = 7 }, false},
		{"no attempts", func(c *CrunchConfig) { c.Board.MaxShuffleAttempts = 0 }, false},
		{"unknown theme", func(c *CrunchConfig) { c.Display.Theme = "neon" }, false},
		{"zero tick rate", func(c *CrunchConfig) { c.Display.TickRate = 0 }, false},
		{"negative flash", func(c *CrunchConfig) { c.Display.FlashTicks = -1 }, false},
		{"bad log level", func(c *CrunchConfig) { c.Log.Level = "loud" }, false},
		{"debug log level", func(c *CrunchConfig) { c.Log.Level = "debug" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrunchConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		input string
		types int
	}{
		{"easy", 4},
		{"", 5},
		{"Normal", 5},
		{"hard", 6},
	}

	for _, tc := range tests {
		preset, err := ParseDifficulty(tc.input)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) failed: %v", tc.input, err)
		}
		cfg := DefaultCrunchConfig()
		ApplyDifficultyPreset(&cfg, preset)
		if cfg.Board.PieceTypes != tc.types {
			t.Errorf("%q: expected %d types, got %d", tc.input, tc.types, cfg.Board.PieceTypes)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%q: preset produced invalid config: %v", tc.input, err)
		}
	}

	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultCrunchConfig()
	ec := cfg.EngineConfig(99)
	if ec.PieceTypes != 6 || ec.MaxShuffleAttempts != 100 || ec.Seed != 99 {
		t.Errorf("unexpected engine config %+v", ec)
	}
	if err := ec.Validate(); err != nil {
		t.Errorf("engine config invalid: %v", err)
	}
}
