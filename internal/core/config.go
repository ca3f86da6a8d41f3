package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters (the grid uses ScreenH-1 rows)
	TickRate int   // Simulation ticks per second (0 = game default)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Ticks survived
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and what happened during the tick.
type StepResult struct {
	State     GameState
	Spawned   int // Obstacles created this tick
	Despawned int // Obstacles removed this tick
}
