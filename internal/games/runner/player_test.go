package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestPlayer(ground int) *Player {
	return NewPlayer(5, ground, config.DefaultRunnerConfig().Player)
}

func TestPlayerStartsGrounded(t *testing.T) {
	p := newTestPlayer(21)
	if !p.Grounded() || p.Y != 21 {
		t.Errorf("new player should stand on the ground, Y=%d", p.Y)
	}

	p.Update()
	if p.Y != 21 || p.FallVelocity != 0 {
		t.Errorf("grounded update should keep Y=21 vel=0, got Y=%d vel=%d", p.Y, p.FallVelocity)
	}
}

func TestPlayerJump(t *testing.T) {
	tests := []struct {
		name   string
		ground int
		wantY  int
	}{
		{"tall screen", 21, 11},
		{"exact height", 10, 0},
		{"short screen clamps at top", 4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(tc.ground)
			p.FallVelocity = 1
			p.Jump()

			if p.Y != tc.wantY {
				t.Errorf("Jump from ground %d: Y = %d, expected %d", tc.ground, p.Y, tc.wantY)
			}
			if p.FallVelocity != 0 {
				t.Errorf("Jump should reset fall velocity, got %d", p.FallVelocity)
			}
		})
	}
}

func TestPlayerJumpWhileAirborneIgnored(t *testing.T) {
	p := newTestPlayer(21)
	p.Jump()
	p.Update()

	y := p.Y
	p.Jump()
	if p.Y != y {
		t.Errorf("airborne jump should be a no-op, Y went from %d to %d", y, p.Y)
	}
}

func TestPlayerFallProfile(t *testing.T) {
	const ground = 21
	p := newTestPlayer(ground)
	p.Jump()

	// Instant rise, then one row per tick
	for i := 1; i <= 10; i++ {
		p.Update()
		want := ground - 10 + i
		if p.Y != want {
			t.Fatalf("tick %d: Y = %d, expected %d", i, p.Y, want)
		}
		if p.Y < ground && p.FallVelocity != 1 {
			t.Fatalf("tick %d: airborne fall velocity = %d, expected 1", i, p.FallVelocity)
		}
	}

	if !p.Grounded() {
		t.Error("player should land 10 ticks after the jump")
	}
	if p.FallVelocity != 0 {
		t.Errorf("landing should zero fall velocity, got %d", p.FallVelocity)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, ground := range []int{1, 5, 9, 21} {
		p := newTestPlayer(ground)
		for tick := 0; tick < 500; tick++ {
			if rng.Intn(3) == 0 {
				p.Jump()
			}
			p.Update()
			if p.Y < 0 || p.Y > ground {
				t.Fatalf("ground %d tick %d: Y = %d out of [0, %d]", ground, tick, p.Y, ground)
			}
		}
	}
}

func TestPlayerCells(t *testing.T) {
	p := newTestPlayer(21)
	cells := p.Cells()
	if len(cells) != 1 || cells[0].X != 5 || cells[0].Y != 21 {
		t.Errorf("Cells() = %v, expected [(5,21)]", cells)
	}
}
