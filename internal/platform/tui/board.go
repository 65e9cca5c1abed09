package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Board layout constants
const (
	hudHeight = 2 // Status line plus separator
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
)

// Glyphs
const (
	glyphHead  = '@'
	glyphBody  = 'o'
	glyphFruit = '*'
	glyphFloor = '·'
)

// BoardSize returns the screen area needed to draw an n x n board with its HUD.
func BoardSize(n int) (w, h int) {
	return n*cellWidth + 2, n + 2 + hudHeight
}

// DrawBoard renders a snapshot into dst: HUD, bordered grid, snake, fruit,
// and the overlay for the current phase.
func DrawBoard(dst *core.Screen, snap snake.Snapshot) {
	dst.Clear()
	drawHUD(dst, snap)

	needW, needH := BoardSize(snap.GridSize)
	if dst.Width() < needW || dst.Height() < needH {
		drawOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorYellow)
		return
	}

	box := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, snap.GridSize+2)
	dst.DrawBox(box, core.ColorGray)

	// Checkered floor
	for y := range snap.GridSize {
		for x := range snap.GridSize {
			if (x+y)%2 == 0 {
				sx, sy := cellOrigin(box, core.Vec{X: x, Y: y})
				dst.SetColor(sx, sy, glyphFloor, core.ColorGray)
			}
		}
	}

	if snap.HasFruit {
		drawCell(dst, box, snap.GridSize, snap.Fruit, glyphFruit, core.ColorRed)
	}

	if snap.Phase != snake.PhaseStart {
		// Tail first so the head wins on overlap
		for i := len(snap.Snake) - 1; i >= 0; i-- {
			glyph, color := glyphBody, core.ColorGreen
			if i == 0 {
				glyph, color = glyphHead, core.ColorBrightGreen
			}
			drawCell(dst, box, snap.GridSize, snap.Snake[i], glyph, color)
		}
	}

	switch snap.Phase {
	case snake.PhaseStart:
		drawOverlay(dst, "SNAKE", "Press arrows to start", core.ColorWhite)
	case snake.PhaseGameOver:
		drawOverlay(dst, "GAME OVER", "Press R to restart", core.ColorWhite)
	case snake.PhaseWin:
		drawOverlay(dst, "YOU WON!", "Perfect game! Press R", core.ColorBrightYellow)
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap snake.Snapshot) {
	left := fmt.Sprintf(" SCORE: %d  LENGTH: %d", snap.Score, snap.Length)
	right := "q: quit "
	dst.DrawText(0, 0, left, core.ColorWhite)
	if len(left)+len(right) <= dst.Width() {
		dst.DrawText(dst.Width()-len(right), 0, right, core.ColorGray)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// cellOrigin maps a grid cell to its screen position inside box.
func cellOrigin(box core.Rect, p core.Vec) (int, int) {
	return box.X + 1 + p.X*cellWidth, box.Y + 1 + p.Y
}

// drawCell draws one grid cell, skipping cells outside the grid.
func drawCell(dst *core.Screen, box core.Rect, n int, p core.Vec, glyph rune, color core.Color) {
	if !p.InGrid(n) {
		return
	}
	x, y := cellOrigin(box, p)
	dst.SetColor(x, y, glyph, color)
}

// drawOverlay draws a centered message box.
func drawOverlay(dst *core.Screen, title, subtitle string, color core.Color) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 6
	boxH := 5
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, title, color)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
