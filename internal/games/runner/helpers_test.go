package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// seqDice returns queued values (modulo n) and 0 once the queue is empty.
// With the default config a 0 rolls face 1, which never spawns.
type seqDice struct {
	vals  []int
	calls int
}

func (d *seqDice) Intn(n int) int {
	d.calls++
	if len(d.vals) == 0 {
		return 0
	}
	v := d.vals[0]
	d.vals = d.vals[1:]
	return v % n
}

// testConfig returns the default config without seeded obstacles.
func testConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.InitialX = nil
	return cfg
}

// newTestGame creates a game whose grid is w x h and whose spawner draws from dice.
func newTestGame(w, h int, dice Dice) *Game {
	cfg := testConfig()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h + 1, Seed: 1})
	g.spawner = NewSpawner(cfg.Obstacles, dice)
	return g
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func jumpInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// countGlyph counts the cells holding glyph.
func countGlyph(g *core.Grid, glyph core.Glyph) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for _, c := range g.Row(y) {
			if c == glyph {
				n++
			}
		}
	}
	return n
}
