// Package config provides YAML-based game configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
)

// Largest obstacle the engine draws: 2 rows tall, 3 columns wide.
const (
	MaxObstacleHeight = 2
	MaxObstacleWidth  = 3
)

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	TickRate  int             `yaml:"tick_rate"` // Ticks per second
	Player    RunnerPlayer    `yaml:"player"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Scenery   RunnerScenery   `yaml:"scenery"`
}

// RunnerPlayer defines player parameters.
type RunnerPlayer struct {
	X          int `yaml:"x"`           // Fixed column of the runner
	JumpHeight int `yaml:"jump_height"` // Rows gained instantly on jump
}

// RunnerObstacles defines obstacle shape and spawn parameters.
type RunnerObstacles struct {
	MaxActive  int   `yaml:"max_active"`  // Concurrent obstacle cap
	SpawnDie   int   `yaml:"spawn_die"`   // Sides of the spawn die
	SpawnFace  int   `yaml:"spawn_face"`  // Face that triggers a spawn attempt
	MinSpacing int   `yaml:"min_spacing"` // Columns an obstacle must clear from the right edge before the next spawn
	MinHeight  int   `yaml:"min_height"`
	MaxHeight  int   `yaml:"max_height"`
	MinWidth   int   `yaml:"min_width"`
	MaxWidth   int   `yaml:"max_width"`
	InitialX   []int `yaml:"initial_x"` // Columns of obstacles present at start
}

// RunnerScenery defines the static background.
type RunnerScenery struct {
	CloudEvery int `yaml:"cloud_every"` // Cloud on the top row every N columns (0 = none)
}

// Validate checks the configuration for values the engine cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Player.X < 0 {
		errs = append(errs, fmt.Errorf("player.x must not be negative, got %d", c.Player.X))
	}
	if c.Player.JumpHeight <= 0 {
		errs = append(errs, fmt.Errorf("player.jump_height must be positive, got %d", c.Player.JumpHeight))
	}

	o := c.Obstacles
	if o.MaxActive <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.max_active must be positive, got %d", o.MaxActive))
	}
	if o.SpawnDie <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_die must be positive, got %d", o.SpawnDie))
	}
	if o.SpawnFace < 1 || o.SpawnFace > o.SpawnDie {
		errs = append(errs, fmt.Errorf("obstacles.spawn_face must be in [1, %d], got %d", o.SpawnDie, o.SpawnFace))
	}
	if o.MinSpacing < 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_spacing must not be negative, got %d", o.MinSpacing))
	}
	if o.MinHeight < 1 || o.MaxHeight < o.MinHeight || o.MaxHeight > MaxObstacleHeight {
		errs = append(errs, fmt.Errorf("obstacles height range [%d, %d] must lie within [1, %d]", o.MinHeight, o.MaxHeight, MaxObstacleHeight))
	}
	if o.MinWidth < 1 || o.MaxWidth < o.MinWidth || o.MaxWidth > MaxObstacleWidth {
		errs = append(errs, fmt.Errorf("obstacles width range [%d, %d] must lie within [1, %d]", o.MinWidth, o.MaxWidth, MaxObstacleWidth))
	}

	if c.Scenery.CloudEvery < 0 {
		errs = append(errs, fmt.Errorf("scenery.cloud_every must not be negative, got %d", c.Scenery.CloudEvery))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
