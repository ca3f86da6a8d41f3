package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/direct"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

const (
	backendTUI    = "tui"
	backendDirect = "direct"
)

var (
	flagConfig  string
	flagBackend string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: runner).

Controls:
  Space/Up   - Jump
  Enter      - Continue after game over
  Q/Ctrl+C   - Quit

Backends:
  tui     - Bubble Tea program on the alternate screen (default)
  direct  - tcell screen driven by a plain sleep-paced loop

Examples:
  runner play
  runner play --backend direct
  runner play --fps 30
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Terminal backend: tui, direct")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "runner"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'runner list' to see available games", gameID)
	}
	if flagBackend != backendTUI && flagBackend != backendDirect {
		return fmt.Errorf("unknown backend %q, expected %s or %s", flagBackend, backendTUI, backendDirect)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Resolve the game config up front so a bad file fails before the screen is taken
	gameCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	runner.SetConfig(gameCfg)

	// Create runtime config, sized to the terminal when it can be queried
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	} else {
		logger.Warn("cannot query terminal size, using defaults", "error", termErr,
			"width", cfg.ScreenW, "height", cfg.ScreenH)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Debug("starting game",
		"game", gameID,
		"backend", flagBackend,
		"width", cfg.ScreenW,
		"height", cfg.ScreenH,
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed,
	)

	var state core.GameState
	switch flagBackend {
	case backendDirect:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		state, err = direct.Run(ctx, game, cfg, gameLogger(logger))
		if ctx.Err() != nil {
			err = nil
		}
	default:
		state, err = tui.Run(game, cfg, gameLogger(logger))
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("game finished", "game", gameID, "score", state.Score, "game_over", state.GameOver)
	return nil
}
