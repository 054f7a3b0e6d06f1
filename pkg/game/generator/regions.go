package generator

import (
	"github.com/zyedidia/generic/avl"
	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
)

func lessID(a, b int) bool {
	return a < b
}

// connectRegions gives every room one door to each region touching it.
// A region that is a room already processed is skipped, since that room
// already placed the door between the two.
func (g *Generator[G]) connectRegions() {
	connectedRooms := mapset.New[int]()
	for _, room := range g.rooms {
		connectors := g.roomConnectors(room)
		connectors.Each(func(regionID int, candidates []world.Position) {
			if connectedRooms.Has(regionID) {
				return
			}
			door := candidates[g.rng.Intn(len(candidates))]
			g.addDoor(door, room.ID, regionID)
		})
		connectedRooms.Put(room.ID)
	}
}

// roomConnectors collects, per neighbouring region id, the wall cells just
// outside room that would join the two. Ids come back in ascending order.
func (g *Generator[G]) roomConnectors(room world.Room) *avl.Tree[int, []world.Position] {
	connectors := avl.New[int, []world.Position](lessID)
	look := func(door world.Position, dir world.Direction) {
		if !world.IsWallAt(g.grid, door) {
			return
		}
		regionID := world.RegionAt(g.grid, door.Add(dir))
		if regionID == world.NothingID {
			return
		}
		candidates, _ := connectors.Get(regionID)
		connectors.Put(regionID, append(candidates, door))
	}

	for x := room.MinPoint.X; x <= room.MaxPoint.X; x += 2 {
		look(world.Position{X: x, Y: room.MinPoint.Y - 1}, world.North)
		look(world.Position{X: x, Y: room.MaxPoint.Y + 1}, world.South)
	}
	for y := room.MinPoint.Y; y <= room.MaxPoint.Y; y += 2 {
		look(world.Position{X: room.MinPoint.X - 1, Y: y}, world.West)
		look(world.Position{X: room.MaxPoint.X + 1, Y: y}, world.East)
	}
	return connectors
}

// addDoor carves a door at p joining roomID to hallID and records it.
// A hidden door already recorded at p is reused, so each cell has at most one
// door record.
func (g *Generator[G]) addDoor(p world.Position, roomID, hallID int) {
	g.doorID++
	world.SetRegionAt(g.grid, p, g.doorID)
	for i := range g.doors {
		if door := &g.doors[i]; door.Hidden && door.Position == p {
			door.ID = g.doorID
			door.RoomID = roomID
			door.HallID = hallID
			door.Hidden = false
			return
		}
	}
	g.doors = append(g.doors, world.Door{
		Position: p,
		ID:       g.doorID,
		RoomID:   roomID,
		HallID:   hallID,
	})
}
