package tumble

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-tumble/internal/core"
	"github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
)

const (
	cellWidth = 2 // columns per tile
	hudHeight = 3
)

type glyph struct {
	text  string
	color platformcore.Color
}

// tileGlyph returns how a tile is drawn. Bridges show open while the switch is on.
func tileGlyph(t core.Tile, switchOn bool) glyph {
	switch t {
	case core.TileFloor:
		return glyph{"░░", platformcore.ColorFloor}
	case core.TileFragile:
		return glyph{"▒▒", platformcore.ColorFragile}
	case core.TileBridge:
		if switchOn {
			return glyph{"══", platformcore.ColorBridgeOpen}
		}
		return glyph{"▓▓", platformcore.ColorBridgeClosed}
	case core.TileSwitch:
		return glyph{"<>", platformcore.ColorSwitch}
	case core.TileGoal:
		return glyph{"[]", platformcore.ColorGoal}
	default:
		return glyph{"  ", platformcore.ColorDefault}
	}
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderMessage(dst, "Cannot start game", g.err.Error())
		return
	}
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderMessage(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", minWidth, minHeight))
		return
	}

	board := platformcore.CenterIn(
		platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1),
		core.GridSize*cellWidth+2, core.GridSize+2,
	)
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderStatus(dst, board)
	g.renderOverlay(dst, board)
}

func (g *Game) renderMessage(dst *platformcore.Screen, title, detail string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, title, platformcore.ColorWarn)
	dst.DrawTextCentered(y+1, detail, platformcore.ColorDim)
}

func (g *Game) renderHUD(dst *platformcore.Screen, board platformcore.Rect) {
	s := g.session
	title := fmt.Sprintf("TUMBLE  Level %d/%d  %s", s.Level(), core.LevelCount, core.LevelName(s.Level()))
	dst.DrawTextCentered(0, title, platformcore.ColorHUD)

	sw := "off"
	if s.SwitchOn() {
		sw = "ON"
	}
	stats := fmt.Sprintf("Moves: %d   Switch: %s   Block: %s", s.Score(), sw, s.Block().Extent.Orientation())
	dst.DrawTextCentered(1, stats, platformcore.ColorDefault)

	switch {
	case g.bannerTicks > 0:
		dst.DrawTextCentered(2, fmt.Sprintf("Level %d cleared!", g.bannerLevel), platformcore.ColorWin)
	case g.hintTicks > 0:
		dst.DrawTextCentered(2, "Hint: "+g.hint.String(), platformcore.ColorSwitch)
	}
}

// cellOrigin returns the screen position of a grid cell inside the board box.
// Rows grow along -Z, which is drawn upward.
func cellOrigin(board platformcore.Rect, c core.Cell) (int, int) {
	return board.X + 1 + c.Col*cellWidth, board.Y + 1 + (core.GridSize - 1 - c.Row)
}

func (g *Game) renderBoard(dst *platformcore.Screen, board platformcore.Rect) {
	s := g.session
	dst.DrawBox(board, platformcore.ColorDim)

	grid := s.Grid()
	for col := range core.GridSize {
		for row := range core.GridSize {
			c := core.Cell{Col: col, Row: row}
			gl := tileGlyph(grid.TileAt(c), s.SwitchOn())
			x, y := cellOrigin(board, c)
			dst.DrawTextColored(x, y, gl.text, gl.color)
		}
	}

	b := s.Block()
	color := platformcore.ColorBlock
	if !b.Phase.Idle() {
		color = platformcore.ColorBlockMoving
	}
	for _, c := range b.Footprint() {
		if !core.InBounds(c.Col, c.Row) {
			continue
		}
		x, y := cellOrigin(board, c)
		dst.DrawTextColored(x, y, strings.Repeat("█", cellWidth), color)
	}
}

func (g *Game) renderStatus(dst *platformcore.Screen, board platformcore.Rect) {
	b := g.session.Block()
	y := board.Bottom()
	if !b.Phase.Idle() {
		dst.DrawTextCentered(y, fmt.Sprintf("tumbling %s %2.0f°", b.Phase.Dir, b.Phase.Angle), platformcore.ColorDim)
		return
	}
	if p := g.session.Pending(); p != core.DirNone {
		dst.DrawTextCentered(y, "next: "+p.String(), platformcore.ColorDim)
	}
}

func (g *Game) renderOverlay(dst *platformcore.Screen, board platformcore.Rect) {
	var lines []string
	color := platformcore.ColorWarn

	switch g.session.Outcome() {
	case core.Lost:
		lines = []string{"YOU FELL", fmt.Sprintf("Moves: %d", g.session.Score()), "R restart  Q quit"}
	case core.Won:
		color = platformcore.ColorWin
		lines = []string{"ALL LEVELS CLEAR", fmt.Sprintf("Moves: %d", g.session.Score()), "R play again  Q quit"}
	default:
		if g.paused {
			lines = []string{"PAUSED", "P resume"}
		}
	}
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := platformcore.CenterIn(board, width+4, len(lines)+2)
	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
