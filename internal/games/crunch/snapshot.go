package crunch

import "github.com/vovakirdan/crunch/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateFailed      GameStateType = "failed"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Level    string
	Moves    int
	Shuffles int
	Possible int
	Created  int
	Cursor   [2]int
	Selected bool
	// Types lists piece types top row first; NoPiece marks holes and gaps.
	Types [][]match3.PieceType
	State GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.failed:
		state = StateFailed
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:     g.tick,
		Level:    g.level.ID,
		Moves:    g.moves,
		Shuffles: g.shuffles,
		Possible: g.possible,
		Created:  g.created,
		Cursor:   [2]int{g.cursor.column, g.cursor.row},
		Selected: g.selected,
		State:    state,
	}

	if g.board != nil {
		rows := g.board.Rows()
		snap.Types = make([][]match3.PieceType, rows)
		for i := range snap.Types {
			row := rows - 1 - i
			snap.Types[i] = make([]match3.PieceType, g.board.Columns())
			for column := range snap.Types[i] {
				if p, ok := g.board.PieceAt(column, row); ok {
					snap.Types[i][column] = p.Type
				}
			}
		}
	}
	return snap
}
