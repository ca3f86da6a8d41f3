package core

import (
	"strings"
)

// Glyph is the content of a single grid cell.
type Glyph uint8

// Glyphs drawn by the runner.
const (
	GlyphEmpty Glyph = iota
	GlyphRunner
	GlyphObstacle
	GlyphGround
	GlyphCloud
)

// Rune returns the character used to draw the glyph.
func (g Glyph) Rune() rune {
	switch g {
	case GlyphRunner, GlyphObstacle:
		return '█'
	case GlyphGround:
		return '■'
	case GlyphCloud:
		return '☁'
	default:
		return ' '
	}
}

// Color returns the foreground color of the glyph.
func (g Glyph) Color() Color {
	switch g {
	case GlyphRunner:
		return ColorGreen
	case GlyphObstacle:
		return ColorBrown
	case GlyphGround:
		return ColorWhite
	default:
		return ColorDefault
	}
}

// String returns a human-readable name for the glyph.
func (g Glyph) String() string {
	switch g {
	case GlyphEmpty:
		return "Empty"
	case GlyphRunner:
		return "Runner"
	case GlyphObstacle:
		return "Obstacle"
	case GlyphGround:
		return "Ground"
	case GlyphCloud:
		return "Cloud"
	default:
		return "Unknown"
	}
}

// Grid is the character buffer the game draws into.
// Cells are stored row-major; coordinates are derived from the index.
// At and Set do not clip: callers check InBounds before writing.
type Grid struct {
	width  int
	height int
	cells  []Glyph
}

// NewGrid creates an empty grid with the given dimensions.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width = Max(width, 0)
	height = Max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Glyph, width*height),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the glyph at (x, y).
func (g *Grid) At(x, y int) Glyph {
	return g.cells[y*g.width+x]
}

// Set places a glyph at (x, y).
func (g *Grid) Set(x, y int, glyph Glyph) {
	g.cells[y*g.width+x] = glyph
}

// Row returns the glyphs of row y. The slice aliases the grid.
func (g *Grid) Row(y int) []Glyph {
	return g.cells[y*g.width : (y+1)*g.width]
}

// String converts the grid to plain text, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height*3 + g.height)

	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, glyph := range g.Row(y) {
			sb.WriteRune(glyph.Rune())
		}
	}
	return sb.String()
}
