package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagLogFile string
	flagDebug   bool
	flagWatch   bool
	flagFit     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start the game at the difficulty menu.

Controls:
  Arrows/WASD  - Steer
  1 / 2 / 3    - Pick slow, fast or very fast (starts from the menu)
  Space/Enter  - Start
  R            - Restart
  Esc          - Back to menu
  ?            - Show all controls
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --difficulty 3
  snake play --fit
  snake play --config ./my-snake.yaml --watch --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd; the root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: discard)")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload speeds and scoring when the config file changes")
	cmd.Flags().BoolVar(&flagFit, "fit", false, "Shrink the board to fit the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger, closer, err := tui.NewLogger(flagLogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Nothing useful to do with a close error on exit

	cfg, source, err := loadConfig(logger)
	if err != nil {
		return err
	}

	gridW, gridH := cfg.GridSize()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := snake.RequiredSize(gridW, gridH)
		switch {
		case flagFit:
			gridW, gridH = snake.FitGrid(gridW, gridH, w, h-1)
		case w < needW || h < needH+1:
			logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH+1))
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rcfg := core.RuntimeConfig{
		GridW:    gridW,
		GridH:    gridH,
		TickRate: cfg.Timing.FPS,
		Seed:     seed,
	}
	session := snake.NewSession(rcfg, snake.RulesFromConfig(cfg))

	logger.Info("starting",
		"config", source,
		"grid", fmt.Sprintf("%dx%d", gridW, gridH),
		"fps", rcfg.TickRate,
		"seed", seed,
		"difficulty", cfg.Difficulty.Default,
	)

	opts := tui.Options{FPS: rcfg.TickRate, Logger: logger}
	if flagWatch {
		if source == config.SourceEmbedded {
			logger.Warn("--watch needs a config file, nothing to watch")
		} else {
			opts.WatchPath = source
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, session, opts)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	logger.Info("bye", "score", session.Score())
	return nil
}

// loadConfig resolves the config file and applies the CLI overrides.
func loadConfig(logger *log.Logger) (config.SnakeConfig, string, error) {
	cfg, source, err := config.LoadReporting(flagConfig, func(path string, err error) {
		logger.Warn("skipping config file", "path", path, "error", err)
	})
	if err != nil {
		return cfg, source, err
	}

	if err := config.ApplyDifficultyPreset(&cfg, flagDifficulty); err != nil {
		return cfg, source, err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	} else if flagFPS < 0 {
		return cfg, source, fmt.Errorf("%w: --fps must be positive, got %d", config.ErrInvalidConfig, flagFPS)
	}
	return cfg, source, nil
}
