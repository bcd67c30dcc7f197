// Package levels loads board shape descriptions for the match3 engine.
// This package depends on match3 but match3 does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/crunch/internal/match3"
	"github.com/vovakirdan/crunch/internal/match3/levels/formats"
)

// Level is a loaded shape description.
type Level struct {
	ID   string
	Name string
	// PieceTypes overrides the configured type count when positive.
	PieceTypes int
	Tiles      [][]int
	FilePath   string

	shape match3.Shape
}

// Shape returns the parsed board shape.
func (l *Level) Shape() match3.Shape {
	return l.shape
}

// Columns returns the board width.
func (l *Level) Columns() int {
	return l.shape.Columns()
}

// Rows returns the board height.
func (l *Level) Rows() int {
	return l.shape.Rows()
}

// NewBoard creates an empty board for this level. A level-specific type
// count replaces cfg.PieceTypes.
func (l *Level) NewBoard(cfg match3.Config) (*match3.Board, error) {
	if l.PieceTypes > 0 {
		cfg.PieceTypes = l.PieceTypes
	}
	b, err := match3.NewBoard(l.shape, cfg)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return b, nil
}

// Loader reads level files from a file system.
type Loader struct {
	FS   fs.FS
	Root string

	// OnSkip is called for every level file LoadAll could not load.
	OnSkip func(path string, err error)
}

// NewLoader creates a loader for the level files under root in fsys.
func NewLoader(fsys fs.FS, root string) *Loader {
	return &Loader{FS: fsys, Root: root}
}

// NewDirLoader creates a loader for a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir), ".")
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !formats.Supported(path.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(p, err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file. The ID defaults to the file name
// without its extension.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := formats.Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	shape, err := match3.ParseShape(parsed.Tiles)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if shape.TileCount() == 0 {
		return Level{}, fmt.Errorf("parsing file %s: shape has no tiles", p)
	}
	if parsed.PieceTypes > match3.MaxPieceTypes {
		return Level{}, fmt.Errorf("parsing file %s: piece_types %d exceeds %d", p, parsed.PieceTypes, match3.MaxPieceTypes)
	}

	id := parsed.ID
	if id == "" {
		base := path.Base(p)
		id = strings.TrimSuffix(base, path.Ext(base))
	}
	name := parsed.Name
	if name == "" {
		name = id
	}

	return Level{
		ID:         id,
		Name:       name,
		PieceTypes: parsed.PieceTypes,
		Tiles:      parsed.Tiles,
		FilePath:   p,
		shape:      shape,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}
