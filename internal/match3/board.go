// Package match3 implements the rules engine of a tile-matching puzzle:
// a bounded grid with holes, the pieces on it, swap legality and run
// detection. It has no terminal or rendering dependencies.
//
// Coordinates are (column, row) with row 0 at the bottom of the board.
// A Board is not safe for concurrent use.
package match3

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// IntNSource is the randomness a Board needs. *rand.Rand satisfies it.
type IntNSource interface {
	Intn(n int) int
}

// Board owns the tile shape, the piece grid and the piece arena.
type Board struct {
	shape  Shape
	cfg    Config
	rng    IntNSource
	logger *log.Logger

	grid *Grid[PieceID]

	// Arena of the current population. The piece with handle id lives at
	// pieces[id-base]; handles below base belong to retired populations.
	pieces []Piece
	base   PieceID

	possible SwapSet
}

// NewBoard creates an empty board for the given shape.
func NewBoard(shape Shape, cfg Config) (*Board, error) {
	if shape.IsZero() {
		return nil, fmt.Errorf("%w: empty shape", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Board{
		shape:    shape,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   log.New(io.Discard),
		grid:     NewGrid[PieceID](shape.Columns(), shape.Rows()),
		possible: SwapSet{},
	}, nil
}

// SetRand replaces the randomness source.
func (b *Board) SetRand(src IntNSource) {
	b.rng = src
}

// SetLogger attaches a logger for debug output.
func (b *Board) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	b.logger = l
}

// Columns returns the board width.
func (b *Board) Columns() int {
	return b.grid.Columns()
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.grid.Rows()
}

// PieceTypes returns how many piece types are in play.
func (b *Board) PieceTypes() int {
	return b.cfg.PieceTypes
}

// Shape returns the board's tile shape.
func (b *Board) Shape() Shape {
	return b.shape
}

// TileAt returns true if (column, row) is a playable tile.
func (b *Board) TileAt(column, row int) bool {
	return b.shape.Tiled(column, row)
}

// PieceAt returns the piece occupying (column, row), if any.
func (b *Board) PieceAt(column, row int) (Piece, bool) {
	id, ok := b.grid.Get(column, row)
	if !ok {
		return Piece{}, false
	}
	return *b.ref(id), true
}

// Piece returns the live piece with the given handle.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	if !b.live(id) {
		return Piece{}, false
	}
	return *b.ref(id), true
}

// Pieces returns every live piece in creation order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PieceCount returns the number of live pieces.
func (b *Board) PieceCount() int {
	return len(b.pieces)
}

func (b *Board) live(id PieceID) bool {
	return id >= b.base && int(id-b.base) < len(b.pieces)
}

func (b *Board) ref(id PieceID) *Piece {
	return &b.pieces[id-b.base]
}

// typeAt returns the type of the piece at (column, row), or NoPiece.
func (b *Board) typeAt(column, row int) PieceType {
	id, ok := b.grid.Get(column, row)
	if !ok {
		return NoPiece
	}
	return b.ref(id).Type
}

// Place puts a new piece of type t on an empty tile and returns it.
// Used to seed specific arrangements; the possible-swap set is not updated.
func (b *Board) Place(column, row int, t PieceType) Piece {
	if !t.Valid(b.cfg.PieceTypes) {
		panic(fmt.Sprintf("match3: piece type %d not in play (%d types)", t, b.cfg.PieceTypes))
	}
	if !b.shape.Tiled(column, row) {
		panic(fmt.Sprintf("match3: cannot place piece on hole (%d,%d)", column, row))
	}
	if _, ok := b.grid.Get(column, row); ok {
		panic(fmt.Sprintf("match3: cell (%d,%d) already occupied", column, row))
	}
	return b.newPiece(column, row, t)
}

func (b *Board) newPiece(column, row int, t PieceType) Piece {
	p := Piece{
		ID:     b.base + PieceID(len(b.pieces)),
		Type:   t,
		Column: column,
		Row:    row,
	}
	b.pieces = append(b.pieces, p)
	b.grid.Set(column, row, p.ID)
	return p
}

// clear removes every piece and retires their handles.
func (b *Board) clear() {
	b.base += PieceID(len(b.pieces))
	b.pieces = b.pieces[:0]
	b.grid.Reset()
	b.possible = SwapSet{}
}

// Populate fills every empty tile with a random piece that does not
// complete a run of three with the two pieces to its left or the two
// below it. Cells are filled row 0 upward, each row left to right, so only
// those neighbours can already be placed.
//
// It returns the created pieces. ErrFillDeadEnd is returned when a cell has
// no admissible type, which needs fewer than three types in play.
func (b *Board) Populate() (PieceSet, error) {
	created := PieceSet{}
	var candidates [MaxPieceTypes]PieceType

	for row := 0; row < b.Rows(); row++ {
		for column := 0; column < b.Columns(); column++ {
			if !b.shape.Tiled(column, row) {
				continue
			}
			if _, ok := b.grid.Get(column, row); ok {
				continue
			}

			n := 0
			for t := Croissant; int(t) <= b.cfg.PieceTypes; t++ {
				if !b.completesRun(column, row, t) {
					candidates[n] = t
					n++
				}
			}
			if n == 0 {
				return created, fmt.Errorf("%w: (%d,%d)", ErrFillDeadEnd, column, row)
			}

			p := b.newPiece(column, row, candidates[b.rng.Intn(n)])
			created.Add(p.ID)
		}
	}
	return created, nil
}

// completesRun reports whether a piece of type t at (column, row) would
// form a run with the two pieces to its left or the two below it.
func (b *Board) completesRun(column, row int, t PieceType) bool {
	if column >= 2 && b.typeAt(column-1, row) == t && b.typeAt(column-2, row) == t {
		return true
	}
	return row >= 2 && b.typeAt(column, row-1) == t && b.typeAt(column, row-2) == t
}

// Shuffle discards all pieces and refills the board until at least one
// swap is possible. It fails with a *ShuffleError (matching
// ErrNoPossibleSwaps) after MaxShuffleAttempts fills.
func (b *Board) Shuffle() (PieceSet, error) {
	deadEnds := 0
	for attempt := 1; attempt <= b.cfg.MaxShuffleAttempts; attempt++ {
		b.clear()

		created, err := b.Populate()
		if err != nil {
			deadEnds++
			b.logger.Debug("fill dead end", "attempt", attempt, "err", err)
			continue
		}

		swaps := b.DetectPossibleSwaps()
		b.logger.Debug("shuffle", "attempt", attempt, "pieces", created.Len(), "swaps", swaps.Len())
		if swaps.Len() > 0 {
			return created, nil
		}
	}

	b.clear()
	return nil, &ShuffleError{
		Attempts:  b.cfg.MaxShuffleAttempts,
		TileCount: b.shape.TileCount(),
		DeadEnds:  deadEnds,
	}
}

// DetectPossibleSwaps recomputes and stores the set of swaps that would
// create a run. Every adjacent pair is tried once, looking right and up
// from each piece; the trial exchange touches grid cells only and is
// always undone.
func (b *Board) DetectPossibleSwaps() SwapSet {
	set := SwapSet{}
	for row := 0; row < b.Rows(); row++ {
		for column := 0; column < b.Columns(); column++ {
			id, ok := b.grid.Get(column, row)
			if !ok {
				continue
			}
			if column < b.Columns()-1 {
				b.trySwap(set, id, column, row, column+1, row)
			}
			if row < b.Rows()-1 {
				b.trySwap(set, id, column, row, column, row+1)
			}
		}
	}
	b.possible = set
	return set
}

// trySwap exchanges the cell contents of (c1,r1) and (c2,r2), records the
// swap if either cell is now part of a run, and restores both cells.
func (b *Board) trySwap(set SwapSet, id PieceID, c1, r1, c2, r2 int) {
	other, ok := b.grid.Get(c2, r2)
	if !ok {
		return
	}

	b.grid.Set(c1, r1, other)
	b.grid.Set(c2, r2, id)

	if b.HasChainAt(c2, r2) || b.HasChainAt(c1, r1) {
		set.Add(Swap{From: id, To: other})
	}

	b.grid.Set(c1, r1, id)
	b.grid.Set(c2, r2, other)
}

// HasChainAt reports whether the piece at (column, row) is part of a
// horizontal or vertical run of three or more pieces of its type.
// The cell must hold a piece.
func (b *Board) HasChainAt(column, row int) bool {
	t := b.typeAt(column, row)
	if t == NoPiece {
		panic(fmt.Sprintf("match3: HasChainAt on empty cell (%d,%d)", column, row))
	}

	horz := 1
	for i := column - 1; i >= 0 && b.typeAt(i, row) == t; i-- {
		horz++
	}
	for i := column + 1; i < b.Columns() && b.typeAt(i, row) == t; i++ {
		horz++
	}
	if horz >= 3 {
		return true
	}

	vert := 1
	for i := row - 1; i >= 0 && b.typeAt(column, i) == t; i-- {
		vert++
	}
	for i := row + 1; i < b.Rows() && b.typeAt(column, i) == t; i++ {
		vert++
	}
	return vert >= 3
}

// ApplySwap exchanges the two pieces' cells and coordinates. It does not
// check legality; use IsPossibleSwap first. The possible-swap set is stale
// afterwards until DetectPossibleSwaps is called.
func (b *Board) ApplySwap(s Swap) {
	if !b.live(s.From) || !b.live(s.To) {
		panic(fmt.Sprintf("match3: ApplySwap with retired piece in %v", s))
	}
	a, o := b.ref(s.From), b.ref(s.To)
	if !adjacent(a.Column, a.Row, o.Column, o.Row) {
		panic(fmt.Sprintf("match3: ApplySwap on non-adjacent pieces %v and %v", *a, *o))
	}

	b.grid.Set(a.Column, a.Row, o.ID)
	b.grid.Set(o.Column, o.Row, a.ID)
	a.Column, a.Row, o.Column, o.Row = o.Column, o.Row, a.Column, a.Row
}

// IsPossibleSwap reports whether s is in the most recently detected set.
func (b *Board) IsPossibleSwap(s Swap) bool {
	return b.possible.Contains(s)
}

// PossibleSwaps returns the most recently detected swaps in a stable order.
func (b *Board) PossibleSwaps() []Swap {
	return b.possible.Slice()
}

// SwapToward builds the swap between the piece at (column, row) and its
// neighbour in direction d. It returns false when either cell is off the
// board or empty.
func (b *Board) SwapToward(column, row int, d Dir) (Swap, bool) {
	if !b.grid.InBounds(column, row) {
		return Swap{}, false
	}
	dc, dr := d.Delta()
	toColumn, toRow := column+dc, row+dr
	if !b.grid.InBounds(toColumn, toRow) {
		return Swap{}, false
	}

	from, ok := b.grid.Get(column, row)
	if !ok {
		return Swap{}, false
	}
	to, ok := b.grid.Get(toColumn, toRow)
	if !ok {
		return Swap{}, false
	}
	return Swap{From: from, To: to}, true
}

func adjacent(c1, r1, c2, r2 int) bool {
	dc, dr := c1-c2, r1-r2
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc+dr == 1
}
