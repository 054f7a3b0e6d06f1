package generator

import (
	"mazegen/pkg/engine/world"
)

// placeRooms scatters rooms with one placement attempt per RoomBaseNumber.
// Rooms land on odd coordinates with odd sides, so their edges line up with
// the hall lattice. Attempts that come too close to an earlier room, or cover
// a constraint when ConstrainHallOnly is set, are dropped.
func (g *Generator[G]) placeRooms() {
	gridWidth := g.grid.Width()
	gridHeight := g.grid.Height()
	sizeMin, sizeMax := g.cfg.RoomSizeMin, g.cfg.RoomSizeMax
	roomAvg := sizeMin + (sizeMax-sizeMin)/2

	for i := 0; i < g.cfg.RoomBaseNumber; i++ {
		roomWidth := g.randRange(sizeMin, sizeMax)/2*2 + 1
		roomHeight := g.randRange(sizeMin, sizeMax)/2*2 + 1
		roomX := g.randRange(0, gridWidth-roomAvg)/2*2 + 1
		roomY := g.randRange(0, gridHeight-roomAvg)/2*2 + 1

		// Shrink rooms that would reach the border
		if xSpace := gridWidth - roomX; roomWidth >= xSpace {
			roomWidth = xSpace/2*2 - 1
		}
		if ySpace := gridHeight - roomY; roomHeight >= ySpace {
			roomHeight = ySpace/2*2 - 1
		}
		if roomWidth < 1 || roomHeight < 1 {
			continue
		}

		room := world.Room{
			MinPoint: world.Position{X: roomX, Y: roomY},
			MaxPoint: world.Position{X: roomX + roomWidth - 1, Y: roomY + roomHeight - 1},
			ID:       g.roomID,
		}
		if g.tooCloseToRooms(room) {
			continue
		}
		if g.cfg.ConstrainHallOnly && g.coversConstraint(room) {
			continue
		}
		g.carveRoom(room)
	}
}

func (g *Generator[G]) tooCloseToRooms(room world.Room) bool {
	for _, another := range g.rooms {
		if room.TooClose(another, 1) {
			return true
		}
	}
	return false
}

func (g *Generator[G]) coversConstraint(room world.Room) bool {
	covers := false
	g.constraints.Each(func(p world.Position) {
		if room.HasPoint(p) {
			covers = true
		}
	})
	return covers
}

// carveRoom stamps every cell of room with its id and records it
func (g *Generator[G]) carveRoom(room world.Room) {
	g.rooms = append(g.rooms, room)
	for x := room.MinPoint.X; x <= room.MaxPoint.X; x++ {
		for y := room.MinPoint.Y; y <= room.MaxPoint.Y; y++ {
			g.grid.SetRegion(x, y, room.ID)
		}
	}
	g.roomID++
}
