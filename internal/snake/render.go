package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // Status line plus separator
	cellCols  = 2 // Terminal columns per board cell, so cells look square
)

// RequiredSize returns the smallest screen that fits a gridW*gridH board,
// its border and the HUD.
func RequiredSize(gridW, gridH int) (w, h int) {
	return gridW*cellCols + 2, gridH + 2 + hudHeight
}

// FitGrid shrinks a board so it fits a screen of the given size.
// Each dimension is kept at least 3x1, the smallest board the config accepts.
func FitGrid(gridW, gridH, screenW, screenH int) (int, int) {
	maxW := (screenW - 2) / cellCols
	maxH := screenH - 2 - hudHeight
	return core.Max(3, core.Min(gridW, maxW)), core.Max(1, core.Min(gridH, maxH))
}

var headGlyphs = map[Direction][2]rune{
	DirRight: {'█', '▶'},
	DirLeft:  {'◀', '█'},
	DirUp:    {'▲', '▲'},
	DirDown:  {'▼', '▼'},
}

// Render draws a snapshot onto dst.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	reqW, reqH := RequiredSize(snap.GridW, snap.GridH)
	if dst.Width() < reqW || dst.Height() < reqH {
		renderTooSmall(dst, reqW, reqH)
		return
	}

	renderHUD(snap, dst)
	board := boardRect(snap, dst)
	dst.DrawBox(board, core.ColorBorder)

	if snap.Mode == ModeMenu {
		renderMenu(snap, dst, board)
		return
	}

	renderBoard(snap, dst, board)
	if snap.Mode == ModeGameOver {
		renderGameOver(snap, dst, board)
	}
}

func boardRect(snap Snapshot, dst *core.Screen) core.Rect {
	w, h := RequiredSize(snap.GridW, snap.GridH)
	h -= hudHeight
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

func renderHUD(snap Snapshot, dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Difficulty: %s  Length: %d", snap.Score, snap.Difficulty.Label(), snap.Length)
	dst.DrawTextColored(0, 0, hud, core.ColorText)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorBorder)
	}
}

// cellAt maps a board cell to the screen column and row of its left half.
func cellAt(board core.Rect, c Coord) (int, int) {
	return board.X + 1 + c.X*cellCols, board.Y + 1 + c.Y
}

func setCell(dst *core.Screen, board core.Rect, c Coord, glyph [2]rune, color core.Color) {
	x, y := cellAt(board, c)
	dst.SetColored(x, y, glyph[0], color)
	dst.SetColored(x+1, y, glyph[1], color)
}

func renderBoard(snap Snapshot, dst *core.Screen, board core.Rect) {
	for y := range snap.GridH {
		for x := range snap.GridW {
			setCell(dst, board, Coord{X: x, Y: y}, [2]rune{'·', ' '}, core.ColorGrid)
		}
	}

	setCell(dst, board, snap.Food, [2]rune{'◖', '◗'}, core.ColorFood)

	// Tail first so the head wins if anything overlaps.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		if i == 0 {
			setCell(dst, board, seg, headGlyphs[snap.Direction], core.ColorSnakeHead)
			continue
		}
		setCell(dst, board, seg, [2]rune{'█', '█'}, core.SnakeShade(i, len(snap.Segments)))
	}
}

func renderMenu(snap Snapshot, dst *core.Screen, board core.Rect) {
	mid := board.Y + board.H/2

	dst.DrawTextCentered(mid-4, "SNAKE GAME", core.ColorTitle)

	buttons := []struct {
		d     config.Difficulty
		color core.Color
	}{
		{config.DifficultySlow, core.ColorSlow},
		{config.DifficultyFast, core.ColorFast},
		{config.DifficultyVeryFast, core.ColorVeryFast},
	}

	labels := make([]string, len(buttons))
	total := 0
	for i, b := range buttons {
		label := fmt.Sprintf("  %d %s  ", i+1, b.d.Label())
		if b.d == snap.Difficulty {
			label = fmt.Sprintf("[ %d %s ]", i+1, b.d.Label())
		}
		labels[i] = label
		total += len(label)
	}
	total += 2 * (len(labels) - 1)

	x := (dst.Width() - total) / 2
	for i, b := range buttons {
		color := core.ColorDim
		if b.d == snap.Difficulty {
			color = b.color
		}
		dst.DrawTextColored(x, mid-1, labels[i], color)
		x += len(labels[i]) + 2
	}

	dst.DrawTextCentered(mid+2, "Press SPACE to Start", core.ColorText)
	dst.DrawTextCentered(mid+3, "Or press 1, 2, 3 to select difficulty and start", core.ColorDim)
}

func renderGameOver(snap Snapshot, dst *core.Screen, board core.Rect) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorGameOver},
		{fmt.Sprintf("Final Score: %d", snap.Score), core.ColorText},
		{"Press R to Restart or ESC for Menu", core.ColorDim},
	}

	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l.text))
	}
	box := board.Centered(width+4, len(lines)*2+1)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGameOver)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l.text, l.color)
	}
}

func renderTooSmall(dst *core.Screen, reqW, reqH int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Terminal too small", core.ColorGameOver)
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", reqW, reqH, dst.Width(), dst.Height()), core.ColorDim)
	dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorDim)
}
