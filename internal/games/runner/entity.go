// Package runner implements a side-scrolling reflex game: the runner stands
// still in its column while obstacles scroll in from the right, and the player
// jumps over them. The game keeps a persistent grid that is updated in place
// every tick rather than redrawn from scratch.
package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Entity is something with a position that is drawn into the grid and can collide.
type Entity interface {
	// Cells returns the grid cells the entity currently occupies.
	Cells() []core.Point

	// Update advances the entity by one tick.
	Update()

	// Glyph returns the glyph the entity is drawn with.
	Glyph() core.Glyph
}
