// Package registry maps game IDs to factories. The runner registers itself
// as "runner" from its package init, and the CLI resolves the ID given to
// `play` (or the default) through Create, so both frontends drive any
// registered game through the same Game interface.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is a grid-drawing game driven one tick at a time.
// Implementations own the grid and update it in place on every Step; they
// never touch the terminal. The frontends map keys to actions, pace the
// ticks at TickRate and paint Grid after each one.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the grid for the screen size in cfg and reseeds the RNG.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. A step after game over is a no-op.
	Step(in core.InputFrame) core.StepResult

	// Grid returns the buffer the game draws into. The platform paints it
	// once per tick and must not modify it.
	Grid() *core.Grid

	// TickRate returns the ticks per second the game is tuned for.
	TickRate() int

	// State returns ticks survived and whether the runner has collided.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory under id. It is called from package init,
// so a duplicate id is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Title is static; a throwaway instance never loads its config
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered. The CLI checks it before
// loading config or taking over the terminal.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
