// Package tui provides the Bubble Tea frontend for the runner.
// It handles the terminal UI loop, input mapping, and painting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after a
// fixed interval. It is re-armed after each tick, so time spent simulating
// and rendering is not compensated.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
