package match3

import "fmt"

// Config holds the per-board settings.
type Config struct {
	PieceTypes         int   // Number of piece types in play, 2..MaxPieceTypes
	MaxShuffleAttempts int   // Populate retries before a shuffle fails
	Seed               int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns the reference settings: six piece types.
func DefaultConfig() Config {
	return Config{
		PieceTypes:         MaxPieceTypes,
		MaxShuffleAttempts: 100,
		Seed:               0,
	}
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.PieceTypes < 2 || c.PieceTypes > MaxPieceTypes {
		return fmt.Errorf("%w: piece types %d not in [2,%d]", ErrInvalidConfig, c.PieceTypes, MaxPieceTypes)
	}
	if c.MaxShuffleAttempts < 1 {
		return fmt.Errorf("%w: max shuffle attempts %d < 1", ErrInvalidConfig, c.MaxShuffleAttempts)
	}
	return nil
}
