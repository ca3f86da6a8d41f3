package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Dice is the random source used by the spawner. *rand.Rand satisfies it.
type Dice interface {
	Intn(n int) int
}

// Spawner decides when new obstacles appear and how big they are.
type Spawner struct {
	cfg  config.RunnerObstacles
	dice Dice
}

// NewSpawner creates a spawner drawing from the given dice.
func NewSpawner(cfg config.RunnerObstacles, dice Dice) *Spawner {
	return &Spawner{cfg: cfg, dice: dice}
}

// Spawn runs the spawn policy once and returns the new obstacle, or nil.
//
// A spawn is attempted when fewer than MaxActive obstacles exist and the die
// shows SpawnFace. It is committed only if every active obstacle is more
// than MinSpacing columns left of the right edge.
func (s *Spawner) Spawn(active []*Obstacle, gridW, ground int) *Obstacle {
	if len(active) >= s.cfg.MaxActive {
		return nil
	}
	if s.roll() != s.cfg.SpawnFace {
		return nil
	}
	for _, o := range active {
		if o.X >= gridW-s.cfg.MinSpacing {
			return nil
		}
	}
	return s.Place(gridW-1, ground)
}

// Place creates an obstacle of random size at (x, ground).
func (s *Spawner) Place(x, ground int) *Obstacle {
	height := s.between(s.cfg.MinHeight, s.cfg.MaxHeight)
	width := s.between(s.cfg.MinWidth, s.cfg.MaxWidth)
	return NewObstacle(x, ground, width, height)
}

// roll returns a uniform face in [1, SpawnDie].
func (s *Spawner) roll() int {
	return s.dice.Intn(s.cfg.SpawnDie) + 1
}

// between returns a uniform value in [lo, hi].
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.dice.Intn(hi-lo+1)
}
