package match3

import (
	"fmt"
	"sort"
)

// PieceType identifies the kind of a piece. Runs are formed by pieces of
// the same type.
type PieceType uint8

const (
	NoPiece PieceType = iota
	Croissant
	Cupcake
	Danish
	Donut
	Macaroon
	SugarCookie
)

// MaxPieceTypes is the size of the piece-type enumeration.
const MaxPieceTypes = 6

// String returns the piece type name.
func (t PieceType) String() string {
	switch t {
	case Croissant:
		return "Croissant"
	case Cupcake:
		return "Cupcake"
	case Danish:
		return "Danish"
	case Donut:
		return "Donut"
	case Macaroon:
		return "Macaroon"
	case SugarCookie:
		return "SugarCookie"
	default:
		return "None"
	}
}

// Glyph returns a single-rune symbol for text renderers.
func (t PieceType) Glyph() rune {
	switch t {
	case Croissant:
		return 'C'
	case Cupcake:
		return 'U'
	case Danish:
		return 'D'
	case Donut:
		return 'O'
	case Macaroon:
		return 'M'
	case SugarCookie:
		return 'S'
	default:
		return ' '
	}
}

// Valid reports whether t is one of the first n piece types.
func (t PieceType) Valid(n int) bool {
	return t >= Croissant && int(t) <= n
}

// PieceID is a stable handle to a piece in a board's arena. Handles are
// never reused by the board that issued them.
type PieceID uint32

// Piece is a typed game object on the board. Identity is its ID; two
// pieces with the same type and position are still distinct.
type Piece struct {
	ID     PieceID
	Type   PieceType
	Column int
	Row    int
}

// String returns a debug representation.
func (p Piece) String() string {
	return fmt.Sprintf("#%d %s(%d,%d)", p.ID, p.Type, p.Column, p.Row)
}

// PieceSet is a set of piece handles.
type PieceSet map[PieceID]struct{}

// Add inserts a piece handle.
func (s PieceSet) Add(id PieceID) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set.
func (s PieceSet) Contains(id PieceID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of handles.
func (s PieceSet) Len() int {
	return len(s)
}

// Slice returns the handles in ascending order.
func (s PieceSet) Slice() []PieceID {
	ids := make([]PieceID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}
