package match3

import (
	"io"

	"github.com/charmbracelet/log"
)

// Controller runs the move loop on a Board and notifies listeners.
// Listeners are called synchronously in subscription order.
type Controller struct {
	board     *Board
	listeners []Listener
	logger    *log.Logger
}

// NewController creates a controller for board.
func NewController(board *Board) *Controller {
	return &Controller{
		board:  board,
		logger: log.New(io.Discard),
	}
}

// SetLogger attaches a logger for debug output.
func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	c.logger = l
}

// Board returns the controlled board.
func (c *Controller) Board() *Board {
	return c.board
}

// Subscribe adds a listener.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l(e)
	}
}

// Shuffle repopulates the board and announces every new piece.
func (c *Controller) Shuffle() error {
	created, err := c.board.Shuffle()
	if err != nil {
		return err
	}

	c.emit(BoardShuffled{
		Pieces:        created.Len(),
		PossibleSwaps: c.board.possible.Len(),
	})
	for _, id := range created.Slice() {
		p, _ := c.board.Piece(id)
		c.emit(PieceCreated{Piece: p})
	}
	return nil
}

// TrySwap applies s if it is a possible swap, recomputes the possible
// swaps and reports true. Otherwise it reports false and leaves the board
// untouched.
func (c *Controller) TrySwap(s Swap) bool {
	from, okFrom := c.board.Piece(s.From)
	to, okTo := c.board.Piece(s.To)

	if !okFrom || !okTo || !c.board.IsPossibleSwap(s) {
		c.logger.Debug("swap rejected", "swap", s)
		c.emit(SwapRejected{Swap: s, From: from, To: to})
		return false
	}

	c.board.ApplySwap(s)
	swaps := c.board.DetectPossibleSwaps()
	c.logger.Debug("swap applied", "swap", s, "possible", swaps.Len())

	from, _ = c.board.Piece(s.From)
	to, _ = c.board.Piece(s.To)
	c.emit(SwapApplied{Swap: s, From: from, To: to, PossibleSwaps: swaps.Len()})
	return true
}

// TrySwapToward attempts the swap between the piece at (column, row) and
// its neighbour in direction d. attempted is false when there is no such
// pair of pieces; applied reports the outcome of the attempt.
func (c *Controller) TrySwapToward(column, row int, d Dir) (applied, attempted bool) {
	s, ok := c.board.SwapToward(column, row, d)
	if !ok {
		return false, false
	}
	return c.TrySwap(s), true
}

// Hint returns one currently possible swap.
func (c *Controller) Hint() (Swap, bool) {
	swaps := c.board.PossibleSwaps()
	if len(swaps) == 0 {
		return Swap{}, false
	}
	return swaps[0], true
}
