package generator

import (
	"fmt"

	"mazegen/pkg/engine/world"
)

// Config holds the tunables of one generation run
type Config struct {
	// Probability to keep a dead end instead of trimming it
	DeadendChance float64 `yaml:"deadend_chance"`
	// Probability to join a dead end lying next to another region with a door
	ReconnectDeadendsChance float64 `yaml:"reconnect_deadends_chance"`
	// Probability for a hall to reshuffle its growth directions at each step
	WiggleChance float64 `yaml:"wiggle_chance"`
	// Probability to keep a door that closes a loop
	ExtraConnectionChance float64 `yaml:"extra_connection_chance"`
	// How many times room placement is attempted
	RoomBaseNumber int `yaml:"room_base_number"`
	RoomSizeMin    int `yaml:"room_size_min"`
	RoomSizeMax    int `yaml:"room_size_max"`
	// True if constraints must end up in halls, never inside rooms
	ConstrainHallOnly bool `yaml:"constrain_hall_only"`
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		DeadendChance:           0.3,
		ReconnectDeadendsChance: 0.5,
		WiggleChance:            0.3,
		ExtraConnectionChance:   0.3,
		RoomBaseNumber:          30,
		RoomSizeMin:             5,
		RoomSizeMax:             7,
		ConstrainHallOnly:       true,
	}
}

// minDimension is the smallest maze side that still has an interior cell
const minDimension = 3

// Warning describes one automatic correction made before generation.
// Format is a stable message id, so front-ends can translate it.
type Warning struct {
	Format string
	Args   []any
}

func warn(format string, args ...any) Warning {
	return Warning{Format: format, Args: args}
}

func (w Warning) String() string {
	return fmt.Sprintf(w.Format, w.Args...)
}

// fixBoundaries makes sure maze width and height are odd and >= 3
func fixBoundaries(width, height int) (int, int, []Warning) {
	var warnings []Warning
	if width%2 == 0 {
		warnings = append(warnings, warn("Maze width %d must be odd. Fixed by subtracting 1.", width))
		width--
	}
	if height%2 == 0 {
		warnings = append(warnings, warn("Maze height %d must be odd. Fixed by subtracting 1.", height))
		height--
	}
	if width < minDimension {
		warnings = append(warnings, warn("Maze width %d must be >= %d. Fixed by increasing to %d.", width, minDimension, minDimension))
		width = minDimension
	}
	if height < minDimension {
		warnings = append(warnings, warn("Maze height %d must be >= %d. Fixed by increasing to %d.", height, minDimension, minDimension))
		height = minDimension
	}
	return width, height, warnings
}

func clampChance(name string, chance float64, warnings []Warning) (float64, []Warning) {
	fixed := chance
	switch {
	case chance < 0:
		fixed = 0
	case chance > 1:
		fixed = 1
	case chance != chance: // NaN
		fixed = 0
	default:
		return chance, warnings
	}
	return fixed, append(warnings, warn("%s = %v must be between 0.0 and 1.0. Fixed by clamping to %v.", name, chance, fixed))
}

// fixConfig corrects out-of-range values for a maze of the given (already fixed) size
func fixConfig(cfg Config, width, height int) (Config, []Warning) {
	var warnings []Warning
	cfg.DeadendChance, warnings = clampChance("deadend_chance", cfg.DeadendChance, warnings)
	cfg.ReconnectDeadendsChance, warnings = clampChance("reconnect_deadends_chance", cfg.ReconnectDeadendsChance, warnings)
	cfg.WiggleChance, warnings = clampChance("wiggle_chance", cfg.WiggleChance, warnings)
	cfg.ExtraConnectionChance, warnings = clampChance("extra_connection_chance", cfg.ExtraConnectionChance, warnings)

	if cfg.RoomBaseNumber < 0 || cfg.RoomBaseNumber >= world.MaxRooms {
		fixed := min(max(cfg.RoomBaseNumber, 0), world.MaxRooms-1)
		warnings = append(warnings, warn("room_base_number = %d must belong to [0, %d]. Fixed by clamping to %d.",
			cfg.RoomBaseNumber, world.MaxRooms-1, fixed))
		cfg.RoomBaseNumber = fixed
	}

	if cfg.RoomSizeMin%2 == 0 {
		warnings = append(warnings, warn("room_size_min = %d must be odd. Fixed by subtracting 1.", cfg.RoomSizeMin))
		cfg.RoomSizeMin--
	}
	if cfg.RoomSizeMax%2 == 0 {
		warnings = append(warnings, warn("room_size_max = %d must be odd. Fixed by subtracting 1.", cfg.RoomSizeMax))
		cfg.RoomSizeMax--
	}

	limit := min(width, height)
	if cfg.RoomSizeMin > limit {
		warnings = append(warnings, warn("room_size_min = %d must not exceed the smaller maze side %d. Fixed by clamping.", cfg.RoomSizeMin, limit))
		cfg.RoomSizeMin = limit
	}
	if cfg.RoomSizeMax > limit {
		warnings = append(warnings, warn("room_size_max = %d must not exceed the smaller maze side %d. Fixed by clamping.", cfg.RoomSizeMax, limit))
		cfg.RoomSizeMax = limit
	}

	if cfg.RoomSizeMin < 0 {
		warnings = append(warnings, warn("room_size_min = %d must be >= 0. Fixed by raising to 0.", cfg.RoomSizeMin))
		cfg.RoomSizeMin = 0
	}
	if cfg.RoomSizeMax < 0 {
		warnings = append(warnings, warn("room_size_max = %d must be >= 0. Fixed by raising to 0.", cfg.RoomSizeMax))
		cfg.RoomSizeMax = 0
	}
	if cfg.RoomSizeMax < cfg.RoomSizeMin {
		warnings = append(warnings, warn("room_size_max = %d must be >= room_size_min = %d. Fixed by raising to %d.",
			cfg.RoomSizeMax, cfg.RoomSizeMin, cfg.RoomSizeMin))
		cfg.RoomSizeMax = cfg.RoomSizeMin
	}
	return cfg, warnings
}

// fixConstraints keeps only the constraints that are odd/odd interior nodes of grid
func fixConstraints(grid world.Grid, constraints world.PositionSet) (world.PositionSet, []Warning) {
	var warnings []Warning
	fixed := world.NewPositionSet()
	for _, p := range world.SortedPositions(constraints) {
		switch {
		case !world.InBoundsAt(grid, p):
			warnings = append(warnings, warn("Constraint %v is out of grid bounds. Skipped.", p))
		case !p.IsOdd():
			warnings = append(warnings, warn("Constraint %v must have odd x and y. Skipped.", p))
		default:
			fixed.Put(p)
		}
	}
	return fixed, warnings
}
