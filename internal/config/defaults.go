package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Display: DisplayConfig{
			Width:    600,
			Height:   600,
			CellSize: 20,
		},
		Timing: TimingConfig{
			FPS: 60,
		},
		Difficulty: DifficultyConfig{
			Default:      DifficultySlow,
			TicksPerMove: DefaultDifficultyTable(),
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
