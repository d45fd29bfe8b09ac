package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func renderSession(s *Session) *core.Screen {
	w, h := RequiredSize(s.Grid().W, s.Grid().H)
	dst := core.NewScreen(w, h)
	Render(s.Snapshot(), dst)
	return dst
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(30, 30)
	if w != 62 || h != 34 {
		t.Errorf("RequiredSize(30, 30) = %dx%d, expected 62x34", w, h)
	}
}

func TestFitGrid(t *testing.T) {
	tests := []struct {
		name         string
		termW, termH int
		wantW, wantH int
	}{
		{"roomy", 200, 60, 30, 30},
		{"short", 80, 24, 30, 20},
		{"tiny", 10, 5, 4, 1},
		{"narrower than minimum", 4, 40, 3, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FitGrid(30, 30, tc.termW, tc.termH)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("FitGrid() = %dx%d, expected %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestRenderMenu(t *testing.T) {
	s := newTestSession(1)
	out := renderSession(s).String()

	for _, want := range []string{"SNAKE GAME", "[ 1 SLOW ]", "2 FAST", "3 VERY FAST", "Press SPACE to Start", "Or press 1, 2, 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu should contain %q", want)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("menu should not show the game over overlay")
	}
}

func TestRenderPlaying(t *testing.T) {
	s := newTestSession(1)
	s.Apply(core.ActionSelectFast)
	s.food.position = Coord{X: 3, Y: 4}
	dst := renderSession(s)

	if row := dst.Row(0); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "FAST") || !strings.Contains(row, "Length: 3") {
		t.Errorf("HUD = %q", row)
	}

	// Board starts at column 0, row 2; cell (x, y) is at column 1+2x, row 3+y.
	if dst.Get(0, 2) != '┌' {
		t.Errorf("expected the board corner at (0,2), got %q", dst.Get(0, 2))
	}
	head := dst.GetCell(31, 18)
	if head.Rune != '█' || dst.Get(32, 18) != '▶' || head.Color != core.ColorSnakeHead {
		t.Errorf("head cell = %q%q (%v)", head.Rune, dst.Get(32, 18), head.Color)
	}
	food := dst.GetCell(7, 7)
	if food.Rune != '◖' || food.Color != core.ColorFood {
		t.Errorf("food cell = %q (%v)", food.Rune, food.Color)
	}
	if dst.Get(1, 3) != '·' {
		t.Errorf("empty cell = %q, expected a grid dot", dst.Get(1, 3))
	}
}

func TestRenderBodyShades(t *testing.T) {
	s := newTestSession(1)
	s.Apply(core.ActionStart)
	placeSnake(s.snake, DirUp,
		Coord{X: 5, Y: 1}, Coord{X: 5, Y: 2}, Coord{X: 5, Y: 3}, Coord{X: 5, Y: 4}, Coord{X: 5, Y: 5}, Coord{X: 5, Y: 6})
	s.food.position = Coord{X: 20, Y: 20}
	dst := renderSession(s)

	if dst.Get(11, 4) != '▲' {
		t.Errorf("head glyph = %q, expected ▲", dst.Get(11, 4))
	}
	for i := 1; i < 6; i++ {
		cell := dst.GetCell(11, 4+i)
		if want := core.SnakeShade(i, 6); cell.Rune != '█' || cell.Color != want {
			t.Errorf("segment %d = %q (%v), expected █ (%v)", i, cell.Rune, cell.Color, want)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestSession(1)
	s.Apply(core.ActionStart)
	s.score = 20
	s.endRound()
	out := renderSession(s).String()

	for _, want := range []string{"GAME OVER", "Final Score: 20", "Press R to Restart or ESC for Menu"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen should contain %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(1)
	dst := core.NewScreen(40, 10)
	Render(s.Snapshot(), dst)

	out := dst.String()
	if !strings.Contains(out, "Terminal too small") || !strings.Contains(out, "Need 62x34") {
		t.Errorf("expected a too-small notice, got:\n%s", out)
	}
}
