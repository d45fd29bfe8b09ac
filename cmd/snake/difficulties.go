package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulties and their speeds",
	Long:  `Shows each difficulty with its ticks-per-move and the resulting snake speed.`,
	Args:  cobra.NoArgs,
	RunE:  runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Difficulties (%s, %d fps):\n\n", source, cfg.Timing.FPS)

	maxNameLen := len("Difficulty")
	for _, d := range config.Difficulties {
		maxNameLen = max(maxNameLen, len(d.String()))
	}

	fmt.Fprintf(out, "  %-3s %-*s  %-5s  %s\n", "Key", maxNameLen, "Difficulty", "Ticks", "Cells/sec")
	fmt.Fprintf(out, "  %-3s %-*s  %-5s  %s\n", "---", maxNameLen, "----------", "-----", "---------")

	for i, d := range config.Difficulties {
		ticks := cfg.Difficulty.TicksPerMove.TicksPerMove(d)
		marker := ""
		if d == cfg.Difficulty.Default {
			marker = "  (default)"
		}
		fmt.Fprintf(out, "  %-3d %-*s  %-5d  %.1f%s\n", i+1, maxNameLen, d, ticks, cellsPerSecond(cfg.Timing.FPS, ticks), marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake play --difficulty <name>' to start at a given speed.")
	return nil
}

// cellsPerSecond is how far the snake travels per second of wall time.
func cellsPerSecond(fps, ticksPerMove int) float64 {
	if ticksPerMove <= 0 {
		return 0
	}
	return float64(fps) / float64(ticksPerMove)
}
