package match3

// Event is a notification from the engine to its presentation layer.
// Renderers animate from events instead of re-deriving board state.
type Event interface {
	event()
}

// PieceCreated is sent for each piece of a new population.
type PieceCreated struct {
	Piece Piece
}

func (PieceCreated) event() {}

// BoardShuffled is sent when a shuffle succeeds, before its PieceCreated
// events.
type BoardShuffled struct {
	Pieces        int
	PossibleSwaps int
}

func (BoardShuffled) event() {}

// SwapApplied is sent after a legal swap. From and To hold the pieces at
// their new cells; PossibleSwaps counts the moves available afterwards.
type SwapApplied struct {
	Swap          Swap
	From          Piece
	To            Piece
	PossibleSwaps int
}

func (SwapApplied) event() {}

// SwapRejected is sent when a swap was attempted but is not legal. The
// board is unchanged.
type SwapRejected struct {
	Swap Swap
	From Piece
	To   Piece
}

func (SwapRejected) event() {}

// Listener receives engine events.
type Listener func(Event)
