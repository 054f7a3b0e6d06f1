package generator

import (
	"math"
	"strings"
	"testing"

	"mazegen/pkg/engine/world"
)

func TestFixBoundaries(t *testing.T) {
	tests := []struct {
		width, height         int
		wantWidth, wantHeight int
		wantWarnings          int
	}{
		{11, 11, 11, 11, 0},
		{4, 6, 3, 5, 2},
		{12, 9, 11, 9, 1},
		{1, 0, 3, 3, 3},
		{-5, 2, 3, 3, 3},
	}
	for _, tt := range tests {
		w, h, warnings := fixBoundaries(tt.width, tt.height)
		if w != tt.wantWidth || h != tt.wantHeight {
			t.Errorf("fixBoundaries(%d, %d) = %d, %d, want %d, %d", tt.width, tt.height, w, h, tt.wantWidth, tt.wantHeight)
		}
		if len(warnings) != tt.wantWarnings {
			t.Errorf("fixBoundaries(%d, %d) gave %d warnings, want %d: %v", tt.width, tt.height, len(warnings), tt.wantWarnings, warnings)
		}
	}
}

func TestFixConfig_DefaultsUntouched(t *testing.T) {
	cfg, warnings := fixConfig(DefaultConfig(), 41, 31)
	if cfg != DefaultConfig() {
		t.Errorf("fixConfig(DefaultConfig()) = %+v, want defaults", cfg)
	}
	if len(warnings) != 0 {
		t.Errorf("fixConfig(DefaultConfig()) warnings = %v, want none", warnings)
	}
}

func TestFixConfig_EvenRoomSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomSizeMin = 4
	cfg.RoomSizeMax = 6
	fixed, warnings := fixConfig(cfg, 11, 11)
	if fixed.RoomSizeMin != 3 || fixed.RoomSizeMax != 5 {
		t.Errorf("room sizes = %d, %d, want 3, 5", fixed.RoomSizeMin, fixed.RoomSizeMax)
	}
	if len(warnings) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
}

func TestFixConfig_ClampsChances(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DeadendChance = -0.5
	cfg.ReconnectDeadendsChance = 1.5
	cfg.WiggleChance = math.NaN()
	fixed, warnings := fixConfig(cfg, 11, 11)
	if fixed.DeadendChance != 0 {
		t.Errorf("DeadendChance = %v, want 0", fixed.DeadendChance)
	}
	if fixed.ReconnectDeadendsChance != 1 {
		t.Errorf("ReconnectDeadendsChance = %v, want 1", fixed.ReconnectDeadendsChance)
	}
	if fixed.WiggleChance != 0 {
		t.Errorf("WiggleChance = %v, want 0", fixed.WiggleChance)
	}
	if fixed.ExtraConnectionChance != cfg.ExtraConnectionChance {
		t.Errorf("ExtraConnectionChance = %v, want unchanged %v", fixed.ExtraConnectionChance, cfg.ExtraConnectionChance)
	}
	if len(warnings) != 3 {
		t.Errorf("got %d warnings, want 3: %v", len(warnings), warnings)
	}
}

func TestFixConfig_RoomBaseNumber(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{world.MaxRooms, world.MaxRooms - 1},
		{world.MaxRooms * 2, world.MaxRooms - 1},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.RoomBaseNumber = tt.in
		fixed, _ := fixConfig(cfg, 11, 11)
		if fixed.RoomBaseNumber != tt.want {
			t.Errorf("RoomBaseNumber %d fixed to %d, want %d", tt.in, fixed.RoomBaseNumber, tt.want)
		}
	}
}

func TestFixConfig_RoomSizeLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomSizeMin = 15
	cfg.RoomSizeMax = 17
	fixed, _ := fixConfig(cfg, 11, 5)
	if fixed.RoomSizeMin != 5 || fixed.RoomSizeMax != 5 {
		t.Errorf("room sizes = %d, %d, want 5, 5", fixed.RoomSizeMin, fixed.RoomSizeMax)
	}

	cfg.RoomSizeMin = 9
	cfg.RoomSizeMax = 3
	fixed, _ = fixConfig(cfg, 21, 21)
	if fixed.RoomSizeMin != 9 || fixed.RoomSizeMax != 9 {
		t.Errorf("inverted room sizes = %d, %d, want 9, 9", fixed.RoomSizeMin, fixed.RoomSizeMax)
	}

	cfg.RoomSizeMin = -3
	cfg.RoomSizeMax = -1
	fixed, _ = fixConfig(cfg, 21, 21)
	if fixed.RoomSizeMin != 0 || fixed.RoomSizeMax != 0 {
		t.Errorf("negative room sizes = %d, %d, want 0, 0", fixed.RoomSizeMin, fixed.RoomSizeMax)
	}
}

func TestFixConstraints(t *testing.T) {
	grid := world.NewTiles(11, 11)
	constraints := world.NewPositionSet(
		world.Position{X: 2, Y: 2},
		world.Position{X: 0, Y: 1},
		world.Position{X: 3, Y: 5},
		world.Position{X: 11, Y: 3},
	)
	fixed, warnings := fixConstraints(grid, constraints)
	if fixed.Size() != 1 || !fixed.Has(world.Position{X: 3, Y: 5}) {
		t.Errorf("fixConstraints kept %v, want only (3, 5)", world.SortedPositions(fixed))
	}
	if len(warnings) != 3 {
		t.Fatalf("got %d warnings, want 3: %v", len(warnings), warnings)
	}
	// (0, 1) sorts first
	if got := warnings[0].String(); !strings.Contains(got, "(0, 1)") || !strings.Contains(got, "out of grid bounds") {
		t.Errorf("warnings[0] = %q", got)
	}
	if got := warnings[1].String(); !strings.Contains(got, "(2, 2)") || !strings.Contains(got, "odd") {
		t.Errorf("warnings[1] = %q", got)
	}
}

func TestWarningString(t *testing.T) {
	w := warn("Maze width %d must be odd. Fixed by subtracting 1.", 4)
	if got, want := w.String(), "Maze width 4 must be odd. Fixed by subtracting 1."; got != want {
		t.Errorf("Warning.String() = %q, want %q", got, want)
	}
}
