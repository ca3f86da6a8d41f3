package runner

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// minGridHeight leaves room for a sky row, the ground row and the floor.
const minGridHeight = 3

// Game implements the runner game logic.
type Game struct {
	cfg       config.RunnerConfig
	cfgLoaded bool
	runtime   core.RuntimeConfig

	grid        *core.Grid
	ground      int        // Row entities rest on, one above the floor
	player      *Player
	drawn       core.Point // Cell the runner glyph was last written to
	playerDrawn bool
	obstacles   []*Obstacle // Active obstacles, oldest first
	spawner     *Spawner

	score     int  // Ticks survived
	gameOver  bool // Whether the player hit an obstacle
	tickCount int
}

var (
	configMu       sync.Mutex
	configOverride *config.RunnerConfig
)

// SetConfig makes every game created afterwards use cfg instead of
// loading the configuration from disk.
func SetConfig(cfg config.RunnerConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	configOverride = &cfg
}

// New creates a new runner game instance. The configuration is resolved on
// first use: the value passed to SetConfig, else LoadRunner's search path.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to the given configuration.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg, cfgLoaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Terminal Runner"
}

// TickRate returns the configured ticks per second.
func (g *Game) TickRate() int {
	g.ensureConfig()
	return g.cfg.TickRate
}

func (g *Game) ensureConfig() {
	if g.cfgLoaded {
		return
	}

	configMu.Lock()
	override := configOverride
	configMu.Unlock()

	if override != nil {
		g.cfg = *override
	} else {
		cfg, err := config.LoadRunner("")
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		g.cfg = cfg
	}
	g.cfgLoaded = true
}

// Reset initializes or restarts the game.
// The grid is (ScreenH-1) x ScreenW, leaving the last terminal row free.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ensureConfig()
	g.runtime = runtime

	width := core.Max(runtime.ScreenW, g.cfg.Player.X+1)
	height := core.Max(runtime.ScreenH-1, minGridHeight)

	g.grid = core.NewGrid(width, height)
	g.ground = height - 2
	g.paintScenery()

	g.player = NewPlayer(g.cfg.Player.X, g.ground, g.cfg.Player)
	g.playerDrawn = false
	g.drawPlayer()

	g.spawner = NewSpawner(g.cfg.Obstacles, rand.New(rand.NewSource(runtime.Seed)))
	g.obstacles = g.obstacles[:0]
	for _, x := range g.cfg.Obstacles.InitialX {
		g.obstacles = append(g.obstacles, g.spawner.Place(x, g.ground))
	}

	g.score = 0
	g.gameOver = false
	g.tickCount = 0
}

// Step advances the game by one tick: player, obstacles, collisions, spawn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Player physics
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	g.player.Update()

	// Obstacles erase their previous footprint, so the runner is drawn after them
	despawned := g.advanceObstacles()
	g.drawPlayer()

	// Collisions
	for _, o := range g.obstacles {
		if Collides(g.player, o) {
			g.gameOver = true
			return core.StepResult{State: g.State(), Despawned: despawned}
		}
	}

	// Spawn
	spawned := 0
	if o := g.spawner.Spawn(g.obstacles, g.grid.Width(), g.ground); o != nil {
		g.obstacles = append(g.obstacles, o)
		spawned = 1
	}

	g.score++

	return core.StepResult{
		State:     g.State(),
		Spawned:   spawned,
		Despawned: despawned,
	}
}

// advanceObstacles moves every obstacle, newest first, and draws or
// despawns it. Despawned obstacles are compacted out afterwards so the
// traversal never skips or revisits an entry.
func (g *Game) advanceObstacles() int {
	removed := 0
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		o := g.obstacles[i]
		o.Update()

		if o.Offscreen() {
			o.Clear(g.grid)
			g.obstacles[i] = nil
			removed++
			continue
		}
		o.Draw(g.grid)
	}

	if removed == 0 {
		return 0
	}

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o != nil {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(g.obstacles); i++ {
		g.obstacles[i] = nil
	}
	g.obstacles = kept
	return removed
}

// drawPlayer moves the runner glyph to the player's current cell.
func (g *Game) drawPlayer() {
	pos := core.Pt(g.player.X, g.player.Y)

	if g.playerDrawn && g.drawn != pos && g.grid.At(g.drawn.X, g.drawn.Y) == core.GlyphRunner {
		g.grid.Set(g.drawn.X, g.drawn.Y, g.scenery(g.drawn.X, g.drawn.Y))
	}

	g.grid.Set(pos.X, pos.Y, core.GlyphRunner)
	g.drawn = pos
	g.playerDrawn = true
}

// paintScenery fills the grid with the static background.
func (g *Game) paintScenery() {
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			g.grid.Set(x, y, g.scenery(x, y))
		}
	}
}

// scenery returns the background glyph of a cell: floor on the last row,
// a cloud on the top row every CloudEvery columns, empty elsewhere.
func (g *Game) scenery(x, y int) core.Glyph {
	if y == g.grid.Height()-1 {
		return core.GlyphGround
	}
	if every := g.cfg.Scenery.CloudEvery; y == 0 && every > 0 && x%every == 0 {
		return core.GlyphCloud
	}
	return core.GlyphEmpty
}

// Grid returns the game's grid buffer.
func (g *Game) Grid() *core.Grid {
	return g.grid
}

// Player returns the runner.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns the active obstacles, oldest first.
func (g *Game) Obstacles() []*Obstacle {
	return g.obstacles
}

// Ground returns the row entities rest on.
func (g *Game) Ground() int {
	return g.ground
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
