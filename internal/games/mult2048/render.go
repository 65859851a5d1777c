package mult2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/mult2048/internal/core"
	"github.com/vovakirdan/mult2048/internal/engine"
)

const (
	cellWidth  = 7 // wide enough for "65536" with padding
	cellHeight = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := engine.BoardSize*cellWidth + 1
	boardH := engine.BoardSize*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score, mode, and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "MULT 2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	if g.mode == ModeCampaign {
		infoStr = fmt.Sprintf("Level %d/%d  Target: %d", g.level+1, len(g.levels), g.currentTarget())
	} else {
		infoStr = fmt.Sprintf("Max: %d", engine.HighestValue(g.board))
	}

	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	modeStr := "Campaign"
	if name := g.currentLevelName(); name != "" {
		modeStr = "Campaign: " + name
	}
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	modeX := boardX + (boardW-len(modeStr))/2
	dst.DrawText(modeX, 2, modeStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range engine.BoardSize + 1 {
		for x := range engine.BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.BoardSize:
				corner = '┐'
			case y == engine.BoardSize && x == 0:
				corner = '└'
			case y == engine.BoardSize && x == engine.BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < engine.BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			if y < engine.BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y := range engine.BoardSize {
		for x := range engine.BoardSize {
			val := g.board[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			label := tileLabel(val)
			padLeft := (cellWidth - 1 - len(label)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			if g.useColor {
				dst.DrawTextColored(cellX+padLeft, cellY, label, tileColor(val))
			} else {
				dst.DrawText(cellX+padLeft, cellY, label)
			}
		}
	}
}

// tileLabel formats a tile for display. Multiplier tiles show as x1/x2/x4.
func tileLabel(val int) string {
	if val < 0 {
		return "x" + strconv.Itoa(-val)
	}
	return strconv.Itoa(val)
}

// tileColor picks a display color by tile rank.
func tileColor(val int) core.Color {
	if val < 0 {
		return core.ColorMagenta
	}
	switch {
	case val >= 8192:
		return core.ColorRed
	case val >= 1024:
		return core.ColorOrange
	case val >= 128:
		return core.ColorYellow
	case val >= 16:
		return core.ColorGreen
	default:
		return core.ColorCyan
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget())
		nextStr := fmt.Sprintf("Next: Level %d", g.level+2)
		g.drawOverlay(dst, centerX, centerY, targetStr, nextStr)
		return
	}

	if g.won {
		if g.mode == ModeCampaign {
			g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
		} else {
			g.drawOverlay(dst, centerX, centerY, "65536!", "The board is yours.", "Press R to restart")
		}
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", engine.HighestValue(g.board))
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
