package world

// Direction represents a cardinal step on the grid
type Direction struct {
	DX int
	DY int
}

// Direction constants. Y grows downwards, so North is {0, -1}.
var (
	North = Direction{DX: 0, DY: -1}
	East  = Direction{DX: 1, DY: 0}
	South = Direction{DX: 0, DY: 1}
	West  = Direction{DX: -1, DY: 0}
)

// Cardinals returns all cardinal directions in the fixed N, E, S, W order.
// The array is a copy, so callers may shuffle it.
func Cardinals() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a unit cardinal direction
func (d Direction) IsValid() bool {
	switch d {
	case North, East, South, West:
		return true
	}
	return false
}

// Neg returns the opposite direction
func (d Direction) Neg() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Scale returns the direction multiplied by n, e.g. Scale(2) skips one cell
func (d Direction) Scale(n int) Direction {
	return Direction{DX: d.DX * n, DY: d.DY * n}
}
