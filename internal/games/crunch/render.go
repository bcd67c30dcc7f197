package crunch

import (
	"fmt"

	"github.com/vovakirdan/crunch/internal/core"
	"github.com/vovakirdan/crunch/internal/match3"
)

const (
	cellWidth = 3 // glyph with a marker on each side
	hudHeight = 3
)

// pieceColors maps piece types to screen colors.
var pieceColors = map[match3.PieceType]core.Color{
	match3.Croissant:   core.ColorYellow,
	match3.Cupcake:     core.ColorMagenta,
	match3.Danish:      core.ColorOrange,
	match3.Donut:       core.ColorCyan,
	match3.Macaroon:    core.ColorGreen,
	match3.SugarCookie: core.ColorWhite,
}

// PieceColor returns the screen color of a piece type.
func PieceColor(t match3.PieceType) core.Color {
	if c, ok := pieceColors[t]; ok {
		return c
	}
	return core.ColorDefault
}

// layoutSize returns the minimum screen size for the level.
func (g *Game) layoutSize() (int, int) {
	boardW := g.level.Columns()*cellWidth + 2
	boardH := g.level.Rows() + 2
	return core.Max(boardW, 32), hudHeight + boardH + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.level.Columns()*cellWidth + 2
	boardH := g.level.Rows() + 2
	frame := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst)
	dst.DrawBox(frame, core.ColorGray)
	if g.board != nil {
		g.renderBoard(dst, frame)
	}
	dst.DrawTextCentered(frame.Bottom(), g.status, g.statusColor())

	if g.failed {
		g.renderFailure(dst)
	} else if g.paused {
		g.renderOverlay(dst, []string{"PAUSED", "", "P: resume"}, core.ColorHighlight)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title and counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "C O O K I E   C R U N C H", core.ColorHighlight)
	dst.DrawTextCentered(1, fmt.Sprintf("%s  |  Moves: %d  |  Possible: %d  |  Shuffles: %d",
		g.level.Name, g.moves, g.possible, g.shuffles), core.ColorDefault)
}

// renderBoard draws tiles and pieces, top row first.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	rows := g.board.Rows()
	for row := 0; row < rows; row++ {
		y := frame.Y + 1 + (rows - 1 - row)
		for column := 0; column < g.board.Columns(); column++ {
			x := frame.X + 1 + column*cellWidth
			g.renderCell(dst, x, y, cell{column: column, row: row})
		}
	}
}

func (g *Game) renderCell(dst *core.Screen, x, y int, c cell) {
	if !g.board.TileAt(c.column, c.row) {
		return
	}

	glyph, color := '·', core.ColorGray
	p, ok := g.board.PieceAt(c.column, c.row)
	if ok {
		glyph, color = p.Type.Glyph(), PieceColor(p.Type)
	}

	left, right, marker := ' ', ' ', core.ColorDefault
	switch {
	case g.flash > 0 && (c == g.flashCells[0] || c == g.flashCells[1]):
		left, right, marker = '!', '!', core.ColorAlert
		color = core.ColorAlert
	case g.selected && c == g.sel:
		left, right, marker = '<', '>', core.ColorHighlight
	case ok && g.hinted && (p.ID == g.hint.From || p.ID == g.hint.To):
		left, right, marker = '*', '*', core.ColorHighlight
	}
	if c == g.cursor {
		left, right, marker = '[', ']', core.ColorHighlight
	}

	dst.SetCell(x, y, left, marker)
	dst.SetCell(x+1, y, glyph, color)
	dst.SetCell(x+2, y, right, marker)
}

func (g *Game) statusColor() core.Color {
	if g.failed || g.flash > 0 {
		return core.ColorAlert
	}
	return core.ColorDefault
}

// renderFailure explains why the level cannot be played.
func (g *Game) renderFailure(dst *core.Screen) {
	lines := []string{"NO POSSIBLE MOVES", ""}
	if g.NoMoves() {
		lines = append(lines, "This shape never offered a swap.")
	} else if g.failErr != nil {
		lines = append(lines, "Level cannot be played.")
	}
	lines = append(lines, "", "S: try again  R: restart  Q: quit")
	g.renderOverlay(dst, lines, core.ColorAlert)
}

// renderOverlay draws a boxed message in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len(l))
	}
	box := dst.Bounds().Centered(w+4, len(lines)+2)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
