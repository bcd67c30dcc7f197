// Package crunch is the playable match-3 game. It drives a match3.Controller
// from abstract input and draws into a core.Screen; it has no terminal
// dependencies.
package crunch

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crunch/internal/config"
	"github.com/vovakirdan/crunch/internal/core"
	"github.com/vovakirdan/crunch/internal/match3"
	"github.com/vovakirdan/crunch/internal/match3/levels"
)

// cell is a board coordinate, row 0 at the bottom.
type cell struct {
	column, row int
}

// Game implements the match-3 puzzle for one level.
type Game struct {
	level  levels.Level
	cfg    config.CrunchConfig
	logger *log.Logger

	board *match3.Board
	ctrl  *match3.Controller
	tick  uint64

	// Screen dimensions
	screenW int
	screenH int

	cursor   cell
	selected bool
	sel      cell

	hint   match3.Swap
	hinted bool

	// Rejected swap feedback
	flash      int
	flashCells [2]cell

	// Counters kept from engine events
	moves    int
	shuffles int
	possible int
	created  int
	status   string

	paused   bool
	failed   bool
	failErr  error
	tooSmall bool
}

// New creates a game for the given level.
func New(level levels.Level, cfg config.CrunchConfig) *Game {
	return &Game{
		level:  level,
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// SetLogger attaches a logger passed on to the engine.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "crunch"
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset builds a fresh board for the level and shuffles it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.selected = false
	g.hinted = false
	g.flash = 0
	g.moves = 0
	g.shuffles = 0
	g.possible = 0
	g.created = 0
	g.status = ""
	g.paused = false
	g.failed = false
	g.failErr = nil
	g.cursor = cell{column: g.level.Columns() / 2, row: g.level.Rows() / 2}

	board, err := g.level.NewBoard(g.cfg.EngineConfig(cfg.Seed))
	if err != nil {
		g.board, g.ctrl = nil, nil
		g.fail(err)
		g.checkScreenSize()
		return
	}
	board.SetLogger(g.logger)

	g.board = board
	g.ctrl = match3.NewController(board)
	g.ctrl.SetLogger(g.logger)
	g.ctrl.Subscribe(g.onEvent)

	g.shuffle()
	g.checkScreenSize()
}

// onEvent keeps presentation state in step with the engine.
func (g *Game) onEvent(e match3.Event) {
	switch e := e.(type) {
	case match3.BoardShuffled:
		g.shuffles++
		g.moves = 0
		g.created = 0
		g.possible = e.PossibleSwaps
		g.status = fmt.Sprintf("Shuffled: %d moves available", e.PossibleSwaps)
	case match3.PieceCreated:
		g.created++
	case match3.SwapApplied:
		g.moves++
		g.possible = e.PossibleSwaps
		g.cursor = cell{column: e.From.Column, row: e.From.Row}
		g.status = fmt.Sprintf("Swapped %s and %s", e.From.Type, e.To.Type)
	case match3.SwapRejected:
		g.flash = g.cfg.Display.FlashTicks
		g.flashCells = [2]cell{
			{column: e.From.Column, row: e.From.Row},
			{column: e.To.Column, row: e.To.Row},
		}
		g.status = "No match"
	}
}

// fail records a board that cannot be played.
func (g *Game) fail(err error) {
	g.failed = true
	g.failErr = err
	g.status = "No possible moves"
	g.logger.Warn("level unplayable", "level", g.level.ID, "err", err)
}

// shuffle refills the board through the controller.
func (g *Game) shuffle() {
	g.selected = false
	g.hinted = false
	g.flash = 0

	if err := g.ctrl.Shuffle(); err != nil {
		g.fail(err)
		return
	}
	g.failed = false
	g.failErr = nil
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.flash > 0 {
		g.flash--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionShuffle) {
		g.shuffle()
		return core.StepResult{State: g.State()}
	}

	if g.failed {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionSelect):
		g.selectAtCursor()
	case in.Has(core.ActionUp):
		g.direction(match3.DirUp)
	case in.Has(core.ActionDown):
		g.direction(match3.DirDown)
	case in.Has(core.ActionLeft):
		g.direction(match3.DirLeft)
	case in.Has(core.ActionRight):
		g.direction(match3.DirRight)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) showHint() {
	h, ok := g.ctrl.Hint()
	g.hint, g.hinted = h, ok
	if !ok {
		g.status = "No moves left, shuffle"
		return
	}
	g.status = "Hint shown"
}

// selectAtCursor picks the piece under the cursor. With a piece already
// selected, picking a neighbour swaps the two.
func (g *Game) selectAtCursor() {
	p, ok := g.board.PieceAt(g.cursor.column, g.cursor.row)
	if !ok {
		g.selected = false
		return
	}

	if g.selected && g.sel != g.cursor {
		from, okFrom := g.board.PieceAt(g.sel.column, g.sel.row)
		if okFrom && neighbours(g.sel, g.cursor) {
			g.trySwap(match3.NewSwap(from.ID, p.ID))
			return
		}
	}

	if g.selected && g.sel == g.cursor {
		g.selected = false
		return
	}
	g.selected = true
	g.sel = g.cursor
}

// direction moves the cursor, or swaps the selected piece toward d.
func (g *Game) direction(d match3.Dir) {
	if !g.selected {
		dc, dr := d.Delta()
		g.cursor.column = core.Clamp(g.cursor.column+dc, 0, g.board.Columns()-1)
		g.cursor.row = core.Clamp(g.cursor.row+dr, 0, g.board.Rows()-1)
		return
	}

	s, ok := g.board.SwapToward(g.sel.column, g.sel.row, d)
	if !ok {
		g.status = "Nothing to swap with"
		return
	}
	g.trySwap(s)
}

func (g *Game) trySwap(s match3.Swap) {
	g.selected = false
	if g.ctrl.TrySwap(s) {
		g.hinted = false
	}
}

func neighbours(a, b cell) bool {
	dc, dr := a.column-b.column, a.row-b.row
	return dc*dc+dr*dr == 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.moves,
		Shuffles: g.shuffles,
		Paused:   g.paused || g.tooSmall,
		Failed:   g.failed,
	}
}

// Err returns why the board could not be played, or nil.
func (g *Game) Err() error {
	return g.failErr
}

// NoMoves reports whether the failure was the shuffle retry cap.
func (g *Game) NoMoves() bool {
	return errors.Is(g.failErr, match3.ErrNoPossibleSwaps)
}

// Resize adapts the layout to a new screen size. The board is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}
