package generator

import (
	"github.com/zyedidia/generic/avl"
	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
)

// reduceMaze trims most dead ends back to the nearest junction, room or
// constraint. Dead ends that survive are kept in g.deadEnds, each once.
func (g *Generator[G]) reduceMaze() {
	doorAt := make(map[world.Position]int, len(g.doors))
	for i, door := range g.doors {
		if !door.Hidden {
			doorAt[door.Position] = i
		}
	}

	for i, deadEnd := range g.deadEnds {
		if g.rng.Float64() < g.cfg.DeadendChance {
			continue
		}
		g.deadEnds[i] = g.trimDeadEnd(deadEnd, doorAt)
	}

	seen := mapset.New[world.Position]()
	remaining := g.deadEnds[:0]
	for _, p := range g.deadEnds {
		if seen.Has(p) || !world.IsDeadEnd(g.grid, p) {
			continue
		}
		seen.Put(p)
		remaining = append(remaining, p)
	}
	g.deadEnds = remaining
}

// trimDeadEnd blanks cells from p while they stay dead ends and returns
// where it stopped. A door that becomes a stub is hidden on the way.
func (g *Generator[G]) trimDeadEnd(p world.Position, doorAt map[world.Position]int) world.Position {
	for world.IsDeadEnd(g.grid, p) && !g.constraints.Has(p) {
		region := world.RegionAt(g.grid, p)
		if world.IsRoomID(region) {
			break
		}
		next, ok := g.carvedNeighbour(p)
		if !ok {
			break
		}
		if world.IsDoorID(region) {
			if i, ok := doorAt[p]; ok {
				g.doors[i].Hidden = true
				delete(doorAt, p)
			}
		}
		world.SetRegionAt(g.grid, p, world.NothingID)
		p = next
	}
	return p
}

// carvedNeighbour returns the first cardinal neighbour of p that is not a wall
func (g *Generator[G]) carvedNeighbour(p world.Position) (world.Position, bool) {
	for _, d := range world.Cardinals() {
		if n := p.Add(d); !world.IsEmptyAt(g.grid, n) {
			return n, true
		}
	}
	return p, false
}

// reconnectDeadEnds opens some of the remaining hall dead ends into a
// different region lying two cells away, adding a door between them.
func (g *Generator[G]) reconnectDeadEnds() {
	for _, deadEnd := range g.deadEnds {
		hallID := world.RegionAt(g.grid, deadEnd)
		if !world.IsHallID(hallID) {
			continue
		}

		connections := 0
		candidates := avl.New[world.Position, int](world.Position.Less)
		for _, d := range world.Cardinals() {
			neighbourID := world.RegionAt(g.grid, deadEnd.Add(d.Scale(2)))
			if neighbourID == world.NothingID {
				continue
			}
			mid := deadEnd.Add(d)
			if !world.IsEmptyAt(g.grid, mid) {
				connections++
				continue
			}
			if neighbourID == hallID {
				continue
			}
			candidates.Put(mid, neighbourID)
		}

		if g.rng.Float64() >= g.cfg.ReconnectDeadendsChance {
			continue
		}
		if connections > 1 || candidates.Size() == 0 {
			continue
		}

		var door world.Position
		neighbourID := world.NothingID
		candidates.Each(func(mid world.Position, id int) {
			if neighbourID == world.NothingID {
				door, neighbourID = mid, id
			}
		})
		g.addDoor(door, neighbourID, hallID)
	}
}
