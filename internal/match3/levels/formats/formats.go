// Package formats provides level file parsers for the match3 level loader.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLevel is the on-disk structure of a level file. Only tiles is
// required; the other fields fall back to loader defaults.
type FileLevel struct {
	ID         string  `yaml:"id,omitempty"`
	Name       string  `yaml:"name,omitempty"`
	PieceTypes int     `yaml:"piece_types,omitempty"`
	Tiles      [][]int `yaml:"tiles"`
}

// Level is a parsed level file.
type Level struct {
	ID         string
	Name       string
	PieceTypes int
	Tiles      [][]int
}

// Parse decodes a level file. JSON is a subset of YAML, so one decoder
// handles both formats.
func Parse(data []byte) (Level, error) {
	var fl FileLevel
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(fl.Tiles) == 0 {
		return Level{}, fmt.Errorf("missing tiles")
	}
	if fl.PieceTypes < 0 {
		return Level{}, fmt.Errorf("piece_types must not be negative, got %d", fl.PieceTypes)
	}

	return Level{
		ID:         strings.TrimSpace(fl.ID),
		Name:       strings.TrimSpace(fl.Name),
		PieceTypes: fl.PieceTypes,
		Tiles:      fl.Tiles,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Supported reports whether ext (with leading dot, any case) is a level file.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range FormatExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}
