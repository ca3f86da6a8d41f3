package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("DefaultConfig() screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 0 {
		t.Errorf("DefaultConfig().TickRate = %d, expected 0 (game default)", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("DefaultConfig().Seed = %d, expected 0 (time based)", cfg.Seed)
	}
}
