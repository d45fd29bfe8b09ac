package core

// RuntimeConfig contains configuration passed to the game at initialization.
// GridW/GridH are measured in cells, not terminal characters.
type RuntimeConfig struct {
	GridW    int   // Board width in cells
	GridH    int   // Board height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// A 600x600 display with 20px cells gives a 30x30 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    30,
		GridH:    30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the coarse state of a game.
// Returned after each step to let the platform react (quit, log, etc.).
type GameState struct {
	Score    int  // Current score
	InMenu   bool // Whether the game is showing its menu
	GameOver bool // Whether the current round has ended
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the snake advanced a cell this tick
	Ate   bool // Whether food was eaten this tick
}
