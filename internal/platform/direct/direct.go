// Package direct runs a game straight on a tcell screen with a plain
// sleep-paced loop. Keyboard events are read on their own goroutine and
// reach the loop only through a jump latch and two signal channels.
package direct

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// styles maps core.Color to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.PaletteColor(2)),
	core.ColorBrown:   tcell.StyleDefault.Foreground(tcell.PaletteColor(94)),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.PaletteColor(7)),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
}

// Runner drives a game on a tcell screen.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	logger *log.Logger

	jump     core.JumpLatch
	confirm  chan struct{}
	quit     chan struct{}
	interval time.Duration
}

// New creates a runner for game on screen. The screen must not be initialized yet.
func New(screen tcell.Screen, game registry.Game, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		screen:  screen,
		game:    game,
		logger:  logger,
		confirm: make(chan struct{}, 1),
		quit:    make(chan struct{}, 1),
	}
}

// Run opens the default terminal screen and plays the game until the
// player continues past the game over prompt, quits, or ctx is done.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.GameState{}, fmt.Errorf("direct: cannot open screen: %w", err)
	}
	return New(screen, game, logger).Run(ctx, cfg)
}

// Run initializes the screen, resets the game to the screen size and runs
// the tick loop. The screen is finalized before returning.
func (r *Runner) Run(ctx context.Context, cfg core.RuntimeConfig) (core.GameState, error) {
	if err := r.screen.Init(); err != nil {
		return core.GameState{}, fmt.Errorf("direct: cannot initialize screen: %w", err)
	}
	defer r.screen.Fini()

	r.screen.HideCursor()
	r.screen.Clear()

	cfg.ScreenW, cfg.ScreenH = r.screen.Size()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.Max(r.game.TickRate(), 1)
	}
	r.interval = time.Second / time.Duration(cfg.TickRate)

	r.game.Reset(cfg)
	r.paint()

	go r.pollEvents()

	return r.loop(ctx)
}

// loop runs fixed-interval ticks until game over, then waits for the
// player to confirm.
func (r *Runner) loop(ctx context.Context) (core.GameState, error) {
	for {
		result := r.game.Step(r.jump.Frame())
		r.paint()

		if result.Spawned > 0 {
			r.logger.Debug("obstacle spawned", "count", result.Spawned)
		}
		if result.Despawned > 0 {
			r.logger.Debug("obstacle despawned", "count", result.Despawned)
		}

		if result.State.GameOver {
			r.logger.Debug("collision", "score", result.State.Score)
			// Enter only counts once the prompt is on screen
			drain(r.confirm)
			r.drawPrompt(fmt.Sprintf("GAME OVER  score %d  press enter to continue", result.State.Score))
			return r.waitForConfirm(ctx)
		}

		select {
		case <-ctx.Done():
			return r.game.State(), ctx.Err()
		case <-r.quit:
			return r.game.State(), nil
		case <-time.After(r.interval):
		}
	}
}

func (r *Runner) waitForConfirm(ctx context.Context) (core.GameState, error) {
	select {
	case <-ctx.Done():
		return r.game.State(), ctx.Err()
	case <-r.quit:
	case <-r.confirm:
	}
	return r.game.State(), nil
}

// pollEvents forwards keyboard input until the screen is finalized.
// It never touches game state: a jump only sets the latch.
func (r *Runner) pollEvents() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		r.handleKey(key)
	}
}

func (r *Runner) handleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyCtrlC,
		ev.Key() == tcell.KeyEscape,
		ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		signal(r.quit)
	case ev.Key() == tcell.KeyEnter:
		signal(r.confirm)
	case ev.Key() == tcell.KeyUp,
		ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		r.jump.Request()
	}
}

// signal performs a non-blocking send on a buffered channel.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// drain discards a pending signal, if any.
func drain(ch chan struct{}) {
	select {
	case <-ch:
	default:
	}
}

// paint writes every grid cell, top row first, then flushes once.
func (r *Runner) paint() {
	g := r.game.Grid()
	for y := 0; y < g.Height(); y++ {
		for x, glyph := range g.Row(y) {
			r.screen.SetContent(x, y, glyph.Rune(), nil, styles[glyph.Color()])
		}
	}
	r.screen.Show()
}

// drawPrompt writes text on the terminal row below the grid.
func (r *Runner) drawPrompt(text string) {
	y := r.game.Grid().Height()
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	for x, ch := range []rune(text) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
	r.screen.Show()
}
