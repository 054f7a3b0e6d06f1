// Package world provides the grid-level primitives of the maze generator:
// positions, directions, region ids, region records and grid backends.
package world

// Grid is the storage capability the generator works against.
// Any representation can be plugged in as long as it honours these rules:
//   - a new grid holds NothingID everywhere
//   - Region returns NothingID for anything outside the strict interior
//   - SetRegion refuses writes outside the strict interior
//   - Width and Height are 0 after Clear
type Grid interface {
	Width() int
	Height() int
	Region(x, y int) int
	SetRegion(x, y, id int) bool
	Clear()
}

// Constructor builds a grid of the given dimensions filled with NothingID
type Constructor[G Grid] func(width, height int) G

// InBounds checks if a position is strictly inside the grid.
// The outer ring is never in bounds, which guarantees a 1-cell wall border.
func InBounds(g Grid, x, y int) bool {
	return x > 0 && y > 0 && x < g.Width()-1 && y < g.Height()-1
}

// IsWall returns true if (x, y) is in bounds and carries no region
func IsWall(g Grid, x, y int) bool {
	return InBounds(g, x, y) && g.Region(x, y) == NothingID
}

// IsEmpty returns true if (x, y) can not be walked: out of bounds or a wall
func IsEmpty(g Grid, x, y int) bool {
	return !InBounds(g, x, y) || IsWall(g, x, y)
}

// RegionAt is Region addressed by Position
func RegionAt(g Grid, p Position) int {
	return g.Region(p.X, p.Y)
}

// SetRegionAt is SetRegion addressed by Position
func SetRegionAt(g Grid, p Position, id int) bool {
	return g.SetRegion(p.X, p.Y, id)
}

// InBoundsAt is InBounds addressed by Position
func InBoundsAt(g Grid, p Position) bool {
	return InBounds(g, p.X, p.Y)
}

// IsWallAt is IsWall addressed by Position
func IsWallAt(g Grid, p Position) bool {
	return IsWall(g, p.X, p.Y)
}

// IsEmptyAt is IsEmpty addressed by Position
func IsEmptyAt(g Grid, p Position) bool {
	return IsEmpty(g, p.X, p.Y)
}

// ForEachCell iterates over every cell of the grid in row order, border included
func ForEachCell(g Grid, fn func(x, y, region int)) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			fn(x, y, g.Region(x, y))
		}
	}
}

// Passways counts the carved cardinal neighbours of p
func Passways(g Grid, p Position) int {
	passways := 0
	for _, d := range Cardinals() {
		if !IsEmptyAt(g, p.Add(d)) {
			passways++
		}
	}
	return passways
}

// IsDeadEnd returns true if p is carved and has exactly one carved cardinal neighbour
func IsDeadEnd(g Grid, p Position) bool {
	return !IsEmptyAt(g, p) && Passways(g, p) == 1
}
