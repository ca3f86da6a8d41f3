package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// The values give the classic gameplay: 15 ticks per second,
// a 10-row jump and at most five obstacles at least 20 columns apart.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		TickRate: 15,
		Player: RunnerPlayer{
			X:          5,
			JumpHeight: 10,
		},
		Obstacles: RunnerObstacles{
			MaxActive:  5,
			SpawnDie:   10,
			SpawnFace:  5,
			MinSpacing: 20,
			MinHeight:  1,
			MaxHeight:  2,
			MinWidth:   1,
			MaxWidth:   3,
			InitialX:   []int{100, 120},
		},
		Scenery: RunnerScenery{
			CloudEvery: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
