package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
)

// minScreenSize returns the smallest screen that fits a board of the given size.
func minScreenSize(size int) (w, h int) {
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	return boardW + 2, hudHeight + 1 + boardH + 1
}

// tileColor picks the shade for a tile value.
func tileColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorBeige
	case 4:
		return core.ColorSand
	case 8:
		return core.ColorOrange
	case 16:
		return core.ColorCoral
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorYellow
	case 512:
		return core.ColorGold
	case 1024:
		return core.ColorBrightGreen
	case 2048:
		return core.ColorBrightMagenta
	}
	return core.ColorPurple
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.opts.Variant.Size
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, scores and the target banner.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	view := g.ctrl.View()

	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", view.Score))
	best := fmt.Sprintf("Best: %d", view.Best)
	dst.DrawTextColor(max(boardX, boardX+boardW-len(best)), 1, best, core.ColorCyan)

	dst.DrawText(boardX, 2, fmt.Sprintf("Steps: %d", view.Steps))
	info := fmt.Sprintf("Max: %d", view.MaxTile)
	if g.banner > 0 {
		info = fmt.Sprintf("%d!", g.opts.Variant.Target)
		dst.DrawTextColor(max(boardX, boardX+boardW-len(info)), 2, info, core.ColorBrightMagenta)
		return
	}
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 2, info)
}

// renderBoard draws the grid lines.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.opts.Variant.Size
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws every sprite at its animated position.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	for _, s := range g.view.Sprites() {
		row, col := s.Position()
		cellX := boardX + int(math.Round(col*cellWidth)) + 1
		cellY := boardY + int(math.Round(row*cellHeight)) + 1

		label := strconv.Itoa(s.Value)
		pad := max(0, (cellWidth-1-len(label))/2)

		c := tileColor(s.Value)
		if s.Popping() {
			c = core.ColorBrightWhite
		}
		dst.DrawTextColor(cellX+pad, cellY, label, c)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	if g.paused {
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}
	if g.State().GameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.ctrl.View().MaxTile)
		g.drawOverlay(dst, board, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.CenteredIn(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColor(cx-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
