package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", cfg, DefaultSnakeConfig())
	}

	w, h := cfg.GridSize()
	if w != 30 || h != 30 {
		t.Errorf("GridSize() = %dx%d, expected 30x30", w, h)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("difficulty:\n  default: very fast\n  ticks_per_move:\n    fast: 4\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Difficulty.Default != DifficultyVeryFast {
		t.Errorf("Default = %q, expected very_fast", cfg.Difficulty.Default)
	}
	table := cfg.Difficulty.TicksPerMove
	if table.Slow != 10 || table.Fast != 4 || table.VeryFast != 3 {
		t.Errorf("TicksPerMove = %+v, expected {10 4 3}", table)
	}
	if cfg.Timing.FPS != 60 || cfg.Scoring.FoodPoints != 10 {
		t.Error("Unspecified sections should keep their defaults")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Error("Empty document should yield the defaults")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown difficulty", "difficulty:\n  default: ludicrous\n", ErrUnknownDifficulty},
		{"zero ticks", "difficulty:\n  ticks_per_move:\n    slow: 0\n", ErrInvalidConfig},
		{"zero fps", "timing:\n  fps: 0\n", ErrInvalidConfig},
		{"zero cell size", "display:\n  cell_size: 0\n", ErrInvalidConfig},
		{"board too small", "display:\n  width: 40\n  height: 40\n  cell_size: 20\n", ErrInvalidConfig},
		{"negative points", "scoring:\n  food_points: -1\n", ErrInvalidConfig},
		{"unknown key", "timing:\n  fsp: 30\n", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Parse() error = %v, expected errors.Is %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Timing.FPS = 0
	cfg.Scoring.FoodPoints = -5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "fps") || !strings.Contains(msg, "food_points") {
		t.Errorf("Validate() should mention both problems, got %q", msg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  fps: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Timing.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.Timing.FPS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing custom path should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultSnakeConfig() {
		t.Error("embedded fallback should equal the defaults")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("scoring:\n  food_points: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != filepath.Join("configs", "snake.yaml") {
		t.Errorf("source = %q, expected configs/snake.yaml", source)
	}
	if cfg.Scoring.FoodPoints != 25 {
		t.Errorf("FoodPoints = %d, expected 25", cfg.Scoring.FoodPoints)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Difficulty.Default = DifficultyFast

	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.Contains(string(data), "default: fast") {
		t.Errorf("encoded YAML should contain the difficulty, got:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed the config: %+v vs %+v", back, cfg)
	}
}

func TestApplyDifficultyPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if err := ApplyDifficultyPreset(&cfg, ""); err != nil || cfg.Difficulty.Default != DifficultySlow {
		t.Error("empty preset should be a no-op")
	}
	if err := ApplyDifficultyPreset(&cfg, "3"); err != nil || cfg.Difficulty.Default != DifficultyVeryFast {
		t.Errorf("preset 3 should select very_fast, got %q (err %v)", cfg.Difficulty.Default, err)
	}
	if err := ApplyDifficultyPreset(&cfg, "warp"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("unknown preset should fail with ErrUnknownDifficulty, got %v", err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  fps: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		cfg SnakeConfig
		err error
	}
	results := make(chan result, 16)
	err := Watch(ctx, path, func(cfg SnakeConfig, err error) {
		results <- result{cfg, err}
	})
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("timing:\n  fps: 45\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// A single write can surface as several events; wait for one with the new value.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-results:
			if r.err == nil && r.cfg.Timing.FPS == 45 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestLoadReportsSkippedFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("timing:\n  fps: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var skipped []string
	cfg, source, err := LoadReporting("", func(path string, err error) {
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("skip reason = %v, expected ErrInvalidConfig", err)
		}
		skipped = append(skipped, path)
	})
	if err != nil {
		t.Fatalf("LoadReporting() failed: %v", err)
	}
	if source != SourceEmbedded || cfg != DefaultSnakeConfig() {
		t.Errorf("expected the embedded defaults, got %q", source)
	}
	if len(skipped) != 1 || skipped[0] != filepath.Join("configs", "snake.yaml") {
		t.Errorf("skipped = %v, expected the broken local file", skipped)
	}
}
