package core

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		v, n     int
		expected int
	}{
		{"inside", 5, 30, 5},
		{"zero", 0, 30, 0},
		{"last cell", 29, 30, 29},
		{"overflow by one", 30, 30, 0},
		{"underflow by one", -1, 30, 29},
		{"far overflow", 65, 30, 5},
		{"far underflow", -31, 30, 29},
		{"degenerate size", 7, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.v, tc.n); got != tc.expected {
				t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	inner := outer.Centered(6, 4)

	if inner.X != 7 || inner.Y != 3 || inner.W != 6 || inner.H != 4 {
		t.Errorf("Centered(6, 4) = %+v, expected {7 3 6 4}", inner)
	}
	if outer.Right() != 20 || outer.Bottom() != 10 {
		t.Errorf("Right/Bottom = %d/%d, expected 20/10", outer.Right(), outer.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if ClampF(1.5, 0.3, 1) != 1 || ClampF(0.1, 0.3, 1) != 0.3 || ClampF(0.5, 0.3, 1) != 0.5 {
		t.Error("ClampF returned a wrong value")
	}
}

func TestSnakeShade(t *testing.T) {
	if SnakeShade(0, 10) != ColorSnakeHead {
		t.Error("Head segment should use the head shade")
	}
	if SnakeShade(9, 10) != ColorSnakeTail {
		t.Error("Last segment of a long snake should use the tail shade")
	}
	// Past the end still clamps to the 30% floor
	if SnakeShade(50, 10) != ColorSnakeTail {
		t.Error("Shade should never go below the tail floor")
	}
	if SnakeShade(0, 0) != ColorSnakeHead {
		t.Error("Zero length should not panic and should use head shade")
	}
}
