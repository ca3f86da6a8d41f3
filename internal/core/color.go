package core

// Color represents a foreground color for a grid cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrown
	ColorWhite
	ColorGray
)

// ANSI returns the ANSI 256-color code for the color, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorGreen:
		return "2"
	case ColorBrown:
		return "94"
	case ColorWhite:
		return "7"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
