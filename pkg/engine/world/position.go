package world

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Position is a cell coordinate on the grid
type Position struct {
	X int
	Y int
}

// PositionSet is a set of positions
type PositionSet = mapset.Set[Position]

// NewPositionSet creates a set holding the given positions
func NewPositionSet(positions ...Position) PositionSet {
	set := mapset.New[Position]()
	for _, p := range positions {
		set.Put(p)
	}
	return set
}

// Add returns the position one step (of any length) along d
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Less orders positions by X, then by Y.
// Only used to make container iteration deterministic.
func (p Position) Less(other Position) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// IsOdd returns true if both coordinates are odd, i.e. the position is a maze node
func (p Position) IsOdd() bool {
	return p.X%2 != 0 && p.Y%2 != 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// SortedPositions returns the members of set in Less order
func SortedPositions(set PositionSet) []Position {
	positions := make([]Position, 0, set.Size())
	set.Each(func(p Position) {
		positions = append(positions, p)
	})
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})
	return positions
}
