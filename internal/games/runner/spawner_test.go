package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const (
	testGridW  = 80
	testGround = 21
)

func TestSpawnerCommitsOnTargetFace(t *testing.T) {
	// roll 5, height index 1 (=2), width index 2 (=3)
	dice := &seqDice{vals: []int{4, 1, 2}}
	s := NewSpawner(config.DefaultRunnerConfig().Obstacles, dice)

	o := s.Spawn(nil, testGridW, testGround)
	if o == nil {
		t.Fatal("expected a spawn when the die shows the target face")
	}
	if o.X != testGridW-1 || o.Y != testGround {
		t.Errorf("spawn at (%d, %d), expected (%d, %d)", o.X, o.Y, testGridW-1, testGround)
	}
	if o.Height != 2 || o.Width != 3 {
		t.Errorf("spawn size %dx%d, expected 3x2", o.Width, o.Height)
	}
	if o.PrevX != o.X || o.PrevY != o.Y {
		t.Error("new obstacle should have no previous footprint elsewhere")
	}
}

func TestSpawnerSkipsOtherFaces(t *testing.T) {
	for face := 0; face < 10; face++ {
		if face == 4 {
			continue
		}
		s := NewSpawner(config.DefaultRunnerConfig().Obstacles, &seqDice{vals: []int{face}})
		if o := s.Spawn(nil, testGridW, testGround); o != nil {
			t.Errorf("roll %d should not spawn", face+1)
		}
	}
}

func TestSpawnerRespectsCap(t *testing.T) {
	dice := &seqDice{vals: []int{4, 0, 0}}
	s := NewSpawner(config.DefaultRunnerConfig().Obstacles, dice)

	active := make([]*Obstacle, 5)
	for i := range active {
		active[i] = NewObstacle(i*2, testGround, 1, 1)
	}

	if o := s.Spawn(active, testGridW, testGround); o != nil {
		t.Error("spawner must not create a sixth obstacle")
	}
	if dice.calls != 0 {
		t.Errorf("die should not be rolled at the cap, rolled %d times", dice.calls)
	}
}

func TestSpawnerSpacing(t *testing.T) {
	tests := []struct {
		name    string
		xs      []int
		spawned bool
	}{
		{"no active obstacles", nil, true},
		{"well clear", []int{10, 40}, true},
		{"one column clear", []int{testGridW - 21}, true},
		{"exactly min spacing", []int{testGridW - 20}, false},
		{"just spawned", []int{testGridW - 1}, false},
		{"one of many too close", []int{5, 30, testGridW - 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(config.DefaultRunnerConfig().Obstacles, &seqDice{vals: []int{4, 0, 0}})

			var active []*Obstacle
			for _, x := range tc.xs {
				active = append(active, NewObstacle(x, testGround, 1, 1))
			}

			o := s.Spawn(active, testGridW, testGround)
			if (o != nil) != tc.spawned {
				t.Errorf("spawned = %v, expected %v", o != nil, tc.spawned)
			}
		})
	}
}

func TestSpawnerSizesInRange(t *testing.T) {
	s := NewSpawner(config.DefaultRunnerConfig().Obstacles, rand.New(rand.NewSource(3)))

	seenW := make(map[int]bool)
	seenH := make(map[int]bool)
	for i := 0; i < 500; i++ {
		o := s.Place(50, testGround)
		if o.Height < 1 || o.Height > 2 {
			t.Fatalf("height %d out of [1, 2]", o.Height)
		}
		if o.Width < 1 || o.Width > 3 {
			t.Fatalf("width %d out of [1, 3]", o.Width)
		}
		seenW[o.Width] = true
		seenH[o.Height] = true
	}
	if len(seenW) != 3 || len(seenH) != 2 {
		t.Errorf("expected every size to appear, widths %v heights %v", seenW, seenH)
	}
}

// TestSpawnerInvariantsOverTime scrolls obstacles without a player and
// checks the cap and spacing guarantees at every spawn.
func TestSpawnerInvariantsOverTime(t *testing.T) {
	const width = 200
	s := NewSpawner(config.DefaultRunnerConfig().Obstacles, rand.New(rand.NewSource(99)))

	var active []*Obstacle
	spawns := 0
	for tick := 0; tick < 5000; tick++ {
		kept := active[:0]
		for _, o := range active {
			o.Update()
			if !o.Offscreen() {
				kept = append(kept, o)
			}
		}
		active = kept

		before := append([]*Obstacle(nil), active...)
		if o := s.Spawn(active, width, testGround); o != nil {
			spawns++
			for _, other := range before {
				if other.X >= width-20 {
					t.Fatalf("tick %d: spawned with an obstacle at x=%d", tick, other.X)
				}
			}
			active = append(active, o)
		}
		if len(active) > 5 {
			t.Fatalf("tick %d: %d active obstacles", tick, len(active))
		}
	}

	if spawns == 0 {
		t.Error("expected at least one spawn")
	}
}
