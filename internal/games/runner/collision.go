package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Collides reports whether two entities share at least one cell.
func Collides(a, b Entity) bool {
	ac := a.Cells()
	occupied := make(map[core.Point]struct{}, len(ac))
	for _, c := range ac {
		occupied[c] = struct{}{}
	}

	for _, c := range b.Cells() {
		if _, ok := occupied[c]; ok {
			return true
		}
	}
	return false
}
