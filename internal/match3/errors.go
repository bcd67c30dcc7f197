package match3

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPossibleSwaps means a shape never admitted a legal first move
	// within the shuffle attempt cap.
	ErrNoPossibleSwaps = errors.New("match3: no possible swaps")

	// ErrFillDeadEnd means a cell had no piece type that avoids a run.
	// Only reachable with fewer than three piece types.
	ErrFillDeadEnd = errors.New("match3: no piece type fits cell")

	// ErrInvalidConfig is wrapped by every configuration validation error.
	ErrInvalidConfig = errors.New("match3: invalid config")
)

// ShuffleError reports a shuffle that gave up after the attempt cap.
type ShuffleError struct {
	Attempts  int
	TileCount int
	DeadEnds  int // attempts abandoned because the fill dead-ended
}

func (e *ShuffleError) Error() string {
	return fmt.Sprintf("match3: no possible swaps after %d shuffle attempts (%d tiles, %d dead ends)",
		e.Attempts, e.TileCount, e.DeadEnds)
}

// Unwrap lets errors.Is match ErrNoPossibleSwaps.
func (e *ShuffleError) Unwrap() error {
	return ErrNoPossibleSwaps
}
