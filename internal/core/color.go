package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility; the platform layer
// decides how to turn them into escape sequences.
type Color uint8

// Palette used by the snake renderer.
const (
	ColorDefault Color = iota
	ColorGrid          // faint board dots
	ColorText          // HUD and menu text
	ColorDim           // secondary text
	ColorSnakeHead     // brightest body shade
	ColorSnakeBody     // mid body shade
	ColorSnakeTail     // darkest body shade (30% floor)
	ColorFood
	ColorTitle
	ColorSlow     // menu button: slow
	ColorFast     // menu button: fast
	ColorVeryFast // menu button: very fast
	ColorGameOver
	ColorBorder
)

// snakeShades orders the body colors from head to tail.
var snakeShades = [...]Color{ColorSnakeHead, ColorSnakeBody, ColorSnakeTail}

// SnakeShade picks the body color for segment i of a snake with the given length.
// Brightness falls off linearly towards the tail and never drops below 30%,
// which maps onto three terminal shades.
func SnakeShade(i, length int) Color {
	if length <= 0 {
		return ColorSnakeHead
	}
	factor := 1.0 - (float64(i)/float64(length))*0.7
	factor = ClampF(factor, 0.3, 1.0)
	switch {
	case factor > 0.75:
		return snakeShades[0]
	case factor > 0.5:
		return snakeShades[1]
	default:
		return snakeShades[2]
	}
}
