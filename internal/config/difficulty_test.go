package config

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"slow", DifficultySlow},
		{"SLOW", DifficultySlow},
		{"1", DifficultySlow},
		{"fast", DifficultyFast},
		{" 2 ", DifficultyFast},
		{"very_fast", DifficultyVeryFast},
		{"very fast", DifficultyVeryFast},
		{"Very-Fast", DifficultyVeryFast},
		{"veryfast", DifficultyVeryFast},
		{"3", DifficultyVeryFast},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDifficulty(tc.in)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}

	if _, err := ParseDifficulty("4"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("ParseDifficulty(\"4\") should fail with ErrUnknownDifficulty, got %v", err)
	}
}

func TestDifficultyNames(t *testing.T) {
	if DifficultyVeryFast.String() != "very fast" {
		t.Errorf("String() = %q, expected \"very fast\"", DifficultyVeryFast.String())
	}
	if DifficultyVeryFast.Label() != "VERY FAST" {
		t.Errorf("Label() = %q, expected \"VERY FAST\"", DifficultyVeryFast.Label())
	}
	if Difficulty("turbo").Valid() {
		t.Error("unknown difficulty should not be valid")
	}
}

func TestDefaultDifficultyTable(t *testing.T) {
	table := DefaultDifficultyTable()

	tests := map[Difficulty]int{
		DifficultySlow:     10,
		DifficultyFast:     6,
		DifficultyVeryFast: 3,
		Difficulty("??"):   10, // falls back to slow
	}
	for d, want := range tests {
		if got := table.TicksPerMove(d); got != want {
			t.Errorf("TicksPerMove(%q) = %d, expected %d", d, got, want)
		}
	}
}
