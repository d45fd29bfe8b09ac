// snake is a single-player Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play the game
//	snake difficulties       - List difficulties and their speeds
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.snake/config.yaml, then ./configs/snake.yaml)
//	--fps <rate>      - Override the tick rate
//	--seed <value>    - Set RNG seed for reproducible food placement
//	--difficulty <d>  - Starting difficulty: slow, fast, very_fast (or 1, 2, 3)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, don't bite yourself",
	Long: `Snake on a wrap-around board, right in your terminal.

The board has no walls: leaving one edge brings you back on the opposite
side. Each food is worth 10 points and adds a segment. The round ends when
the snake runs into itself.

Available commands:
  play          - Play the game (default)
  difficulties  - Show the difficulty table
  config        - Print the effective configuration

Examples:
  snake
  snake play --difficulty fast
  snake play --seed 42 --log-file snake.log
  snake play --config ./my-snake.yaml --watch
  snake config > ~/.snake/config.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: slow, fast, very_fast")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(configCmd)
}
