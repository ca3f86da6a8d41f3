package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type stubGame struct {
	id    string
	grid  *core.Grid
	state core.GameState
}

func (s *stubGame) ID() string    { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(cfg core.RuntimeConfig) {
	s.grid = core.NewGrid(cfg.ScreenW, cfg.ScreenH-1)
	s.state = core.GameState{}
}
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	s.state.Score++
	return core.StepResult{State: s.state}
}
func (s *stubGame) Grid() *core.Grid      { return s.grid }
func (s *stubGame) TickRate() int         { return 15 }
func (s *stubGame) State() core.GameState { return s.state }

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", stubFactory("stub-create"))

	if !Exists("stub-create") {
		t.Fatal("Exists() = false, expected true after Register")
	}

	g, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-create" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub-create")
	}

	// Each call yields a fresh instance
	other, _ := Create("stub-create")
	if g == other {
		t.Error("Create() should return a new instance per call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("no-such-game") {
		t.Fatal("Exists() = true for an unregistered id")
	}
	_, err := Create("no-such-game")
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !strings.Contains(err.Error(), "no-such-game") {
		t.Errorf("error %q should name the game", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", stubFactory("stub-dup"))

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same id should panic")
		}
	}()
	Register("stub-dup", stubFactory("stub-dup"))
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-list-b", stubFactory("stub-list-b"))
	Register("stub-list-a", stubFactory("stub-list-a"))

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	found := false
	for _, g := range games {
		if g.ID == "stub-list-a" {
			found = true
			if g.Title != "Stub stub-list-a" {
				t.Errorf("Title = %q, expected %q", g.Title, "Stub stub-list-a")
			}
		}
	}
	if !found {
		t.Error("List() missing registered game")
	}
}
