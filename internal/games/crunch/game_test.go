package crunch

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/crunch/internal/config"
	"github.com/vovakirdan/crunch/internal/core"
	"github.com/vovakirdan/crunch/internal/match3"
	"github.com/vovakirdan/crunch/internal/match3/levels"
)

func loadLevel(t *testing.T, id string) levels.Level {
	t.Helper()
	lvl, err := levels.Embedded().LoadByID(id)
	if err != nil {
		t.Fatalf("LoadByID(%s) failed: %v", id, err)
	}
	return lvl
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(loadLevel(t, "Level_1"), config.DefaultCrunchConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetShufflesBoard(t *testing.T) {
	g := newTestGame(t, 7)

	state := g.State()
	if state.Failed || state.Shuffles != 1 || state.Moves != 0 {
		t.Fatalf("unexpected state after reset: %+v", state)
	}

	snap := g.Snapshot()
	if snap.Created != 81 {
		t.Errorf("expected 81 PieceCreated events, got %d", snap.Created)
	}
	if snap.Possible == 0 {
		t.Error("expected possible swaps after reset")
	}
	if snap.State != StatePlaying {
		t.Errorf("expected playing, got %s", snap.State)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := newTestGame(t, 99).Snapshot()
	b := newTestGame(t, 99).Snapshot()

	for i := range a.Types {
		for j := range a.Types[i] {
			if a.Types[i][j] != b.Types[i][j] {
				t.Fatalf("boards differ at row %d column %d", i, j)
			}
		}
	}
}

func TestCursorClamps(t *testing.T) {
	g := newTestGame(t, 1)
	g.cursor = cell{column: 0, row: 0}

	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionDown))
	if g.cursor != (cell{0, 0}) {
		t.Errorf("cursor left the board: %+v", g.cursor)
	}

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionRight))
	if g.cursor != (cell{1, 1}) {
		t.Errorf("expected cursor at (1,1), got %+v", g.cursor)
	}
}

// directionTo returns the action and engine direction from a to b.
func directionTo(a, b match3.Piece) (core.Action, match3.Dir) {
	switch {
	case b.Column > a.Column:
		return core.ActionRight, match3.DirRight
	case b.Column < a.Column:
		return core.ActionLeft, match3.DirLeft
	case b.Row > a.Row:
		return core.ActionUp, match3.DirUp
	default:
		return core.ActionDown, match3.DirDown
	}
}

func TestSwapTowardHint(t *testing.T) {
	g := newTestGame(t, 3)

	g.Step(frame(core.ActionHint))
	if !g.hinted {
		t.Fatal("expected a hint")
	}

	from, _ := g.board.Piece(g.hint.From)
	to, _ := g.board.Piece(g.hint.To)
	action, _ := directionTo(from, to)

	g.cursor = cell{from.Column, from.Row}
	g.Step(frame(core.ActionSelect))
	if !g.selected {
		t.Fatal("expected selection")
	}
	g.Step(frame(action))

	if g.State().Moves != 1 {
		t.Fatalf("expected one move, got %d (status %q)", g.State().Moves, g.status)
	}
	if g.selected || g.hinted {
		t.Error("selection and hint should clear after a swap")
	}
	moved, _ := g.board.Piece(from.ID)
	if moved.Column != to.Column || moved.Row != to.Row {
		t.Errorf("piece did not move: %v", moved)
	}
	if g.cursor != (cell{to.Column, to.Row}) {
		t.Errorf("cursor should follow the moved piece, got %+v", g.cursor)
	}
}

func TestSelectNeighbourSwaps(t *testing.T) {
	g := newTestGame(t, 4)
	hint, _ := g.ctrl.Hint()
	from, _ := g.board.Piece(hint.From)
	to, _ := g.board.Piece(hint.To)

	g.cursor = cell{from.Column, from.Row}
	g.Step(frame(core.ActionSelect))
	g.cursor = cell{to.Column, to.Row}
	g.Step(frame(core.ActionSelect))

	if g.State().Moves != 1 {
		t.Errorf("expected swap via second select, got %d moves", g.State().Moves)
	}
}

func TestRejectedSwapFlashes(t *testing.T) {
	g := newTestGame(t, 5)

	var from match3.Piece
	found := false
	for row := 0; row < g.board.Rows() && !found; row++ {
		for column := 0; column < g.board.Columns()-1 && !found; column++ {
			s, _ := g.board.SwapToward(column, row, match3.DirRight)
			if !g.board.IsPossibleSwap(s) {
				from, _ = g.board.PieceAt(column, row)
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no illegal swap on board")
	}

	before := g.Snapshot().Types
	g.cursor = cell{from.Column, from.Row}
	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))

	if g.State().Moves != 0 {
		t.Error("illegal swap counted as a move")
	}
	if g.flash != g.cfg.Display.FlashTicks {
		t.Errorf("expected flash %d, got %d", g.cfg.Display.FlashTicks, g.flash)
	}
	if g.flashCells[0] != (cell{from.Column, from.Row}) {
		t.Errorf("flash on wrong cell %+v", g.flashCells[0])
	}
	after := g.Snapshot().Types
	for i := range before {
		for j := range before[i] {
			if before[i][j] != after[i][j] {
				t.Fatal("board changed after rejected swap")
			}
		}
	}

	for i := 0; i < g.cfg.Display.FlashTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.flash != 0 {
		t.Errorf("flash should expire, got %d", g.flash)
	}
}

func TestSwapOffBoard(t *testing.T) {
	g := newTestGame(t, 6)
	g.cursor = cell{0, 0}
	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionLeft))

	if g.status != "Nothing to swap with" {
		t.Errorf("unexpected status %q", g.status)
	}
	if !g.selected {
		t.Error("selection should stay after a swap off the board")
	}
}

func TestShuffleAction(t *testing.T) {
	g := newTestGame(t, 8)
	g.Step(frame(core.ActionShuffle))

	if g.State().Shuffles != 2 {
		t.Errorf("expected 2 shuffles, got %d", g.State().Shuffles)
	}
	if g.Snapshot().Created != 81 {
		t.Errorf("expected 81 created pieces for the new population, got %d", g.Snapshot().Created)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 9)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.cursor = cell{0, 0}
	g.Step(frame(core.ActionRight))
	if g.cursor != (cell{0, 0}) {
		t.Error("input handled while paused")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestUnplayableShape(t *testing.T) {
	fsys := fstest.MapFS{
		"strip.json": {Data: []byte(`{"piece_types": 2, "tiles": [[1,1,1]]}`)},
	}
	lvl, err := levels.NewLoader(fsys, ".").LoadByID("strip")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	cfg := config.DefaultCrunchConfig()
	cfg.Board.MaxShuffleAttempts = 10
	g := New(lvl, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})

	if !g.State().Failed || !g.NoMoves() {
		t.Fatalf("expected no-moves failure, got %+v err=%v", g.State(), g.Err())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "NO POSSIBLE MOVES") {
		t.Error("failure overlay not rendered")
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 10)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "C O O K I E") {
		t.Error("title missing")
	}
	if !strings.Contains(out, "Moves: 0") {
		t.Error("HUD missing")
	}

	// Top-left piece sits one row below the frame top.
	p, _ := g.board.PieceAt(0, g.board.Rows()-1)
	boardW := g.board.Columns()*cellWidth + 2
	x := (80-boardW)/2 + 2
	if got := screen.GetCell(x, hudHeight+1); got.Rune != p.Type.Glyph() || got.Color != PieceColor(p.Type) {
		t.Errorf("top-left cell = %+v, expected %c", got, p.Type.Glyph())
	}
}

func TestTooSmall(t *testing.T) {
	g := New(loadLevel(t, "Level_1"), config.DefaultCrunchConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 30, Seed: 1})

	if !g.State().Paused {
		t.Error("small window should pause the game")
	}
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too small message")
	}
}
