package match3

import "fmt"

// Grid is a fixed-size sparse 2D container addressed by (column, row).
// Cells are stored in row-major order: index = row*columns + column.
// Any cell may be empty.
type Grid[T any] struct {
	columns int
	rows    int
	cells   []T
	filled  []bool
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid[T any](columns, rows int) *Grid[T] {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("match3: invalid grid size %dx%d", columns, rows))
	}
	return &Grid[T]{
		columns: columns,
		rows:    rows,
		cells:   make([]T, columns*rows),
		filled:  make([]bool, columns*rows),
	}
}

// Columns returns the grid width.
func (g *Grid[T]) Columns() int {
	return g.columns
}

// Rows returns the grid height.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// InBounds returns true if (column, row) addresses a cell of this grid.
func (g *Grid[T]) InBounds(column, row int) bool {
	return column >= 0 && column < g.columns && row >= 0 && row < g.rows
}

// index converts a coordinate to a flat index, panicking when out of range.
func (g *Grid[T]) index(column, row int) int {
	if !g.InBounds(column, row) {
		panic(fmt.Sprintf("match3: cell (%d,%d) outside %dx%d grid", column, row, g.columns, g.rows))
	}
	return row*g.columns + column
}

// Get returns the value at (column, row) and whether the cell is filled.
func (g *Grid[T]) Get(column, row int) (T, bool) {
	i := g.index(column, row)
	return g.cells[i], g.filled[i]
}

// Set stores a value at (column, row).
func (g *Grid[T]) Set(column, row int, v T) {
	i := g.index(column, row)
	g.cells[i] = v
	g.filled[i] = true
}

// Clear empties the cell at (column, row).
func (g *Grid[T]) Clear(column, row int) {
	i := g.index(column, row)
	var zero T
	g.cells[i] = zero
	g.filled[i] = false
}

// Reset empties every cell.
func (g *Grid[T]) Reset() {
	var zero T
	for i := range g.cells {
		g.cells[i] = zero
		g.filled[i] = false
	}
}

// Count returns the number of filled cells.
func (g *Grid[T]) Count() int {
	n := 0
	for _, f := range g.filled {
		if f {
			n++
		}
	}
	return n
}
