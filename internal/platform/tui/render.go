package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorGreen: lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGreen.ANSI())),
	core.ColorBrown: lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorBrown.ANSI())),
	core.ColorWhite: lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorWhite.ANSI())),
	core.ColorGray:  lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.ANSI())),
}

// RenderGrid converts the grid to a styled string for display, top row first.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderGrid(g *core.Grid) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Width()*g.Height()*4 + g.Height())

	var run strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := g.Row(y)
		x := 0
		for x < len(row) {
			startColor := row[x].Color()

			// Collect consecutive cells with same color
			run.Reset()
			for x < len(row) && row[x].Color() == startColor {
				run.WriteRune(row[x].Rune())
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
