package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty is a named game speed.
type Difficulty string

const (
	DifficultySlow     Difficulty = "slow"
	DifficultyFast     Difficulty = "fast"
	DifficultyVeryFast Difficulty = "very_fast"
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{DifficultySlow, DifficultyFast, DifficultyVeryFast}

// ParseDifficulty accepts the canonical names plus the spellings players type:
// "very fast", "very-fast", "veryfast" and the menu hotkeys "1".."3".
func ParseDifficulty(s string) (Difficulty, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	switch norm {
	case "slow", "1":
		return DifficultySlow, nil
	case "fast", "2":
		return DifficultyFast, nil
	case "very_fast", "veryfast", "3":
		return DifficultyVeryFast, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultySlow, DifficultyFast, DifficultyVeryFast:
		return true
	}
	return false
}

// Label returns the uppercase name shown on menu buttons.
func (d Difficulty) Label() string {
	return strings.ToUpper(d.String())
}

// String returns the lowercase display name ("very fast").
func (d Difficulty) String() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

// UnmarshalYAML lets config files use any spelling ParseDifficulty accepts.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// DifficultyTable maps each difficulty to the number of ticks between moves.
type DifficultyTable struct {
	Slow     int `yaml:"slow"`
	Fast     int `yaml:"fast"`
	VeryFast int `yaml:"very_fast"`
}

// DefaultDifficultyTable returns the stock 10/6/3 table.
func DefaultDifficultyTable() DifficultyTable {
	return DifficultyTable{Slow: 10, Fast: 6, VeryFast: 3}
}

// TicksPerMove returns the move interval for d.
// Unknown difficulties fall back to the slow interval.
func (t DifficultyTable) TicksPerMove(d Difficulty) int {
	switch d {
	case DifficultyFast:
		return t.Fast
	case DifficultyVeryFast:
		return t.VeryFast
	default:
		return t.Slow
	}
}
