// Package config provides YAML-based game configuration loading,
// validation and hot reloading for the snake game.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownDifficulty is returned for unrecognised difficulty names.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// DisplayConfig describes the nominal display the board is derived from.
type DisplayConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// TimingConfig defines the fixed frame rate.
type TimingConfig struct {
	FPS int `yaml:"fps"`
}

// DifficultyConfig picks the starting difficulty and the speed table.
type DifficultyConfig struct {
	Default      Difficulty      `yaml:"default"`
	TicksPerMove DifficultyTable `yaml:"ticks_per_move"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// GridSize returns the board dimensions in cells.
func (c SnakeConfig) GridSize() (w, h int) {
	if c.Display.CellSize <= 0 {
		return 0, 0
	}
	return c.Display.Width / c.Display.CellSize, c.Display.Height / c.Display.CellSize
}

// Validate checks that the config describes a playable game.
// All problems are reported at once, each wrapped with ErrInvalidConfig.
func (c SnakeConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Display.CellSize <= 0 {
		fail("display.cell_size must be positive, got %d", c.Display.CellSize)
	} else {
		w, h := c.GridSize()
		// The snake spawns in the centre and needs room for its first three cells.
		if w < 3 || h < 1 {
			fail("board is %dx%d cells, need at least 3x1", w, h)
		}
	}
	if c.Timing.FPS <= 0 {
		fail("timing.fps must be positive, got %d", c.Timing.FPS)
	}
	if !c.Difficulty.Default.Valid() {
		fail("difficulty.default %q is not slow, fast or very_fast", c.Difficulty.Default)
	}
	t := c.Difficulty.TicksPerMove
	for _, d := range Difficulties {
		if n := t.TicksPerMove(d); n <= 0 {
			fail("difficulty.ticks_per_move.%s must be positive, got %d", string(d), n)
		}
	}
	if c.Scoring.FoodPoints < 0 {
		fail("scoring.food_points must not be negative, got %d", c.Scoring.FoodPoints)
	}

	return errors.Join(errs...)
}

// ApplyDifficultyPreset overrides the starting difficulty from a CLI value.
// An empty preset leaves the config untouched.
func ApplyDifficultyPreset(cfg *SnakeConfig, preset string) error {
	if preset == "" {
		return nil
	}
	d, err := ParseDifficulty(preset)
	if err != nil {
		return err
	}
	cfg.Difficulty.Default = d
	return nil
}
