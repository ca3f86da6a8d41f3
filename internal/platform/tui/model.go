package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.ANSI()))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	started    bool // Whether the first tick has run
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.Max(game.TickRate(), 1)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. A jump is queued in the input frame
// and consumed by the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm:
		if m.gameState.GameOver {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)
	}

	return m, nil
}

// handleResize adopts the terminal size reported at startup. Resizing
// after the first tick is not supported and is ignored.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.started {
		m.logger.Debug("ignoring resize during play", "width", msg.Width, "height", msg.Height)
		return m, nil
	}
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Debug("grid resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		// Stop ticking; wait for the player to continue
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.started = true

	if result.Spawned > 0 {
		m.logger.Debug("obstacle spawned", "count", result.Spawned)
	}
	if result.Despawned > 0 {
		m.logger.Debug("obstacle despawned", "count", result.Despawned)
	}
	if m.gameState.GameOver {
		m.logger.Debug("collision", "score", m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the grid followed by a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderGrid(m.game.Grid()) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	width := m.game.Grid().Width()

	var line string
	if m.gameState.GameOver {
		line = gameOverStyle.Render(fmt.Sprintf("GAME OVER  score %d  press enter to continue", m.gameState.Score))
	} else {
		line = statusStyle.Render(fmt.Sprintf("score %d  ", m.gameState.Score)) + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
