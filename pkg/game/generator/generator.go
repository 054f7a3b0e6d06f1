// Package generator builds dungeon mazes: rectangular rooms joined by winding
// one-cell halls through doors.
//
// A run is a fixed pipeline: fix the input, place rooms, grow halls around
// them, add doors, drop the doors that close loops, trim dead ends and
// finally reconnect some of the remaining dead ends.
package generator

import (
	"math/rand"
	"time"

	"mazegen/pkg/engine/world"
)

// MapGenerator is an interface for maze generation algorithms
type MapGenerator[G world.Grid] interface {
	Generate(width, height int, cfg Config, constraints world.PositionSet) G
	Name() string
}

var _ MapGenerator[*world.Tiles] = (*Generator[*world.Tiles])(nil)

// Generator generates mazes on grids of type G.
// A Generator is not safe for concurrent use; independent Generators are.
type Generator[G world.Grid] struct {
	construct world.Constructor[G]

	cfg         Config
	grid        G
	hasGrid     bool
	constraints world.PositionSet
	warnings    []Warning

	rooms    []world.Room
	halls    []world.Hall
	doors    []world.Door
	deadEnds []world.Position
	regions  *Regions

	hallID int
	roomID int
	doorID int

	rng     *rand.Rand
	seed    int64
	seedSet bool
}

// New creates a generator producing the default dense grid
func New() *Generator[*world.Tiles] {
	return NewWithGrid(world.NewTiles)
}

// NewWithGrid creates a generator for any grid backend
func NewWithGrid[G world.Grid](construct world.Constructor[G]) *Generator[G] {
	return &Generator[G]{
		construct:   construct,
		constraints: world.NewPositionSet(),
		regions:     NewRegions(),
	}
}

// Name returns the name of this generator
func (g *Generator[G]) Name() string {
	return "Rooms and Mazes"
}

// SetSeed pins the seed used by every following Generate call
func (g *Generator[G]) SetSeed(seed int64) {
	g.seed = seed
	g.seedSet = true
}

// Seed returns the seed of the last run, or the pinned one
func (g *Generator[G]) Seed() int64 {
	return g.seed
}

// Generate builds a new maze. Width and height are made odd and at least 3,
// the configuration is clamped and invalid constraints are dropped; every such
// correction is reported by Warnings. Constraints are positions with odd
// coordinates inside the border that must never end up as walls.
// The returned grid belongs to g and is cleared by the next call.
func (g *Generator[G]) Generate(width, height int, cfg Config, constraints world.PositionSet) G {
	g.clear()
	g.init(width, height, cfg, constraints)
	g.placeRooms()
	g.buildMaze()
	g.connectRegions()
	g.reduceConnectivity()
	g.reduceMaze()
	g.reconnectDeadEnds()
	return g.grid
}

// Grid returns the last generated grid
func (g *Generator[G]) Grid() G {
	return g.grid
}

// Config returns the corrected configuration of the last run
func (g *Generator[G]) Config() Config {
	return g.cfg
}

// Constraints returns the constraints honoured by the last run
func (g *Generator[G]) Constraints() world.PositionSet {
	return g.constraints
}

// Warnings returns every correction made during the last run, in order
func (g *Generator[G]) Warnings() []Warning {
	return g.warnings
}

// Rooms returns the placed rooms
func (g *Generator[G]) Rooms() []world.Room {
	return g.rooms
}

// Halls returns one record per grown hall
func (g *Generator[G]) Halls() []world.Hall {
	return g.halls
}

// Doors returns every door, hidden ones included
func (g *Generator[G]) Doors() []world.Door {
	return g.doors
}

// DeadEnds returns the dead ends left after trimming
func (g *Generator[G]) DeadEnds() []world.Position {
	return g.deadEnds
}

// Regions returns the union-find built while reducing connectivity
func (g *Generator[G]) Regions() *Regions {
	return g.regions
}

// clear drops everything produced by the previous run
func (g *Generator[G]) clear() {
	if g.hasGrid {
		g.grid.Clear()
	}
	g.rooms = nil
	g.halls = nil
	g.doors = nil
	g.deadEnds = nil
	g.warnings = nil
	g.constraints = world.NewPositionSet()
	g.regions = NewRegions()
	g.hallID = world.HallIDStart
	g.roomID = world.RoomIDStart
	g.doorID = world.DoorIDStart
}

func (g *Generator[G]) init(width, height int, cfg Config, constraints world.PositionSet) {
	width, height, warnings := fixBoundaries(width, height)
	g.warnings = append(g.warnings, warnings...)

	g.grid = g.construct(width, height)
	g.hasGrid = true

	g.cfg, warnings = fixConfig(cfg, width, height)
	g.warnings = append(g.warnings, warnings...)

	g.constraints, warnings = fixConstraints(g.grid, constraints)
	g.warnings = append(g.warnings, warnings...)

	if !g.seedSet {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))
}

// randRange returns a uniform int in [lo, hi]
func (g *Generator[G]) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
