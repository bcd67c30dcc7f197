package match3

import (
	"fmt"
	"strings"
)

// Shape marks which cells of a board are playable tiles. Cells without a
// tile are holes and can never hold a piece. A Shape is immutable.
//
// Rows are indexed bottom-up: row 0 is the bottom row of the board.
type Shape struct {
	tiles *Grid[struct{}]
}

// ParseShape builds a Shape from a shape description: rows listed top row
// first, each a slice of 0 (hole) or 1 (tile). Source row 0 becomes internal
// row len(rows)-1.
func ParseShape(rows [][]int) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, fmt.Errorf("match3: shape has no rows")
	}
	columns := len(rows[0])
	if columns == 0 {
		return Shape{}, fmt.Errorf("match3: shape row 0 is empty")
	}

	tiles := NewGrid[struct{}](columns, len(rows))
	for i, src := range rows {
		if len(src) != columns {
			return Shape{}, fmt.Errorf("match3: shape row %d has %d columns, want %d", i, len(src), columns)
		}
		row := len(rows) - i - 1
		for column, v := range src {
			switch v {
			case 0:
			case 1:
				tiles.Set(column, row, struct{}{})
			default:
				return Shape{}, fmt.Errorf("match3: shape row %d column %d: invalid value %d", i, column, v)
			}
		}
	}
	return Shape{tiles: tiles}, nil
}

// MustParseShape is like ParseShape but panics on error.
func MustParseShape(rows [][]int) Shape {
	s, err := ParseShape(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// FullShape returns a columns x rows shape with every cell tiled.
func FullShape(columns, rows int) Shape {
	tiles := NewGrid[struct{}](columns, rows)
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			tiles.Set(column, row, struct{}{})
		}
	}
	return Shape{tiles: tiles}
}

// Columns returns the shape width.
func (s Shape) Columns() int {
	if s.tiles == nil {
		return 0
	}
	return s.tiles.Columns()
}

// Rows returns the shape height.
func (s Shape) Rows() int {
	if s.tiles == nil {
		return 0
	}
	return s.tiles.Rows()
}

// IsZero reports whether the shape was never built.
func (s Shape) IsZero() bool {
	return s.tiles == nil
}

// Tiled returns true if (column, row) is a playable tile.
func (s Shape) Tiled(column, row int) bool {
	_, ok := s.tiles.Get(column, row)
	return ok
}

// TileCount returns the number of playable tiles.
func (s Shape) TileCount() int {
	if s.tiles == nil {
		return 0
	}
	return s.tiles.Count()
}

// String draws the shape top row first, '#' for tiles and '.' for holes.
func (s Shape) String() string {
	var sb strings.Builder
	for row := s.Rows() - 1; row >= 0; row-- {
		for column := 0; column < s.Columns(); column++ {
			if s.Tiled(column, row) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
