package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Obstacle is a block that scrolls left one column per tick.
// (X, Y) is its bottom-left cell; the shape extends Width columns to the
// right and Height rows up.
type Obstacle struct {
	X, Y          int
	Width, Height int

	// Position at the previous draw, erased before the current one is painted.
	PrevX, PrevY int
}

var _ Entity = (*Obstacle)(nil)

// NewObstacle creates an obstacle at (x, y).
func NewObstacle(x, y, width, height int) *Obstacle {
	return &Obstacle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		PrevX:  x,
		PrevY:  y,
	}
}

// Update remembers the current position and scrolls one column left.
func (o *Obstacle) Update() {
	o.PrevX = o.X
	o.PrevY = o.Y
	o.X--
}

// Offscreen reports whether the rightmost column has passed the left edge.
func (o *Obstacle) Offscreen() bool {
	return o.X+o.Width <= 0
}

// Cells returns the current footprint, including cells outside the grid.
func (o *Obstacle) Cells() []core.Point {
	return o.footprint(o.X, o.Y)
}

// Glyph returns the obstacle glyph.
func (o *Obstacle) Glyph() core.Glyph {
	return core.GlyphObstacle
}

// Draw erases the previous footprint and paints the current one.
// Both passes complete separately so overlapping footprints leave no trail.
func (o *Obstacle) Draw(g *core.Grid) {
	o.fill(g, o.PrevX, o.PrevY, core.GlyphEmpty)
	o.fill(g, o.X, o.Y, core.GlyphObstacle)
}

// Clear erases every cell the obstacle may still have on the grid.
func (o *Obstacle) Clear(g *core.Grid) {
	o.fill(g, o.PrevX, o.PrevY, core.GlyphEmpty)
	o.fill(g, o.X, o.Y, core.GlyphEmpty)
}

func (o *Obstacle) footprint(x, y int) []core.Point {
	cells := make([]core.Point, 0, o.Width*o.Height)
	for dy := 0; dy < o.Height; dy++ {
		for dx := 0; dx < o.Width; dx++ {
			cells = append(cells, core.Pt(x+dx, y-dy))
		}
	}
	return cells
}

// fill writes glyph over the footprint anchored at (x, y), skipping
// cells outside the grid.
func (o *Obstacle) fill(g *core.Grid, x, y int, glyph core.Glyph) {
	for dy := 0; dy < o.Height; dy++ {
		for dx := 0; dx < o.Width; dx++ {
			if g.InBounds(x+dx, y-dy) {
				g.Set(x+dx, y-dy, glyph)
			}
		}
	}
}
