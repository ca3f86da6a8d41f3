// runner is a terminal side-scroller: jump over the obstacles for as long as you can.
//
// Usage:
//
//	runner play [game]      - Play a game (default: runner)
//	runner list             - List available games
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: game config, 15)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file instead of stderr
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Terminal Runner - jump over obstacles in your terminal",
	Long: `Terminal Runner is a side-scrolling reflex game drawn with plain
characters. Obstacles scroll in from the right; press space to jump over them.

Available commands:
  play     - Start a game
  list     - Show all available games

Examples:
  runner play
  runner play --backend direct
  runner play --config ./my-runner.yaml --seed 42
  runner play --log-file runner.log --log-level debug`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use game config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (in-game debug logs are only kept with a file)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
