package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner. Its column never changes; it only moves vertically.
//
// A jump lifts the player JumpHeight rows in a single tick, after which it
// falls one row per tick until it lands on the ground row.
type Player struct {
	X, Y         int
	FallVelocity int

	ground     int // Row the player rests on
	jumpHeight int
}

// fallSpeed is the rows lost per tick while airborne.
const fallSpeed = 1

var _ Entity = (*Player)(nil)

// NewPlayer creates a grounded player in column x.
func NewPlayer(x, ground int, cfg config.RunnerPlayer) *Player {
	return &Player{
		X:          x,
		Y:          ground,
		ground:     ground,
		jumpHeight: cfg.JumpHeight,
	}
}

// Grounded reports whether the player stands on the ground row.
func (p *Player) Grounded() bool {
	return p.Y == p.ground
}

// Jump lifts a grounded player. Requests while airborne are ignored.
func (p *Player) Jump() {
	if !p.Grounded() {
		return
	}
	p.Y = core.Max(p.Y-p.jumpHeight, 0)
	p.FallVelocity = 0
}

// Update applies one tick of falling.
func (p *Player) Update() {
	p.FallVelocity = fallSpeed
	p.Y = core.Clamp(p.Y+p.FallVelocity, 0, p.ground)

	if p.Y == p.ground {
		p.FallVelocity = 0
	}
}

// Cells returns the single cell the player occupies.
func (p *Player) Cells() []core.Point {
	return []core.Point{core.Pt(p.X, p.Y)}
}

// Glyph returns the runner glyph.
func (p *Player) Glyph() core.Glyph {
	return core.GlyphRunner
}
