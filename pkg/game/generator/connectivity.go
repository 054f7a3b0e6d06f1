package generator

import (
	"mazegen/pkg/engine/world"
)

// Regions is a union-find forest over region ids.
// Roots are always the smallest id of their component.
type Regions struct {
	parent map[int]int
}

// NewRegions creates an empty forest
func NewRegions() *Regions {
	return &Regions{parent: make(map[int]int)}
}

// Add makes id its own component unless it is already known
func (r *Regions) Add(id int) {
	if _, ok := r.parent[id]; !ok {
		r.parent[id] = id
	}
}

// Find returns the root of id's component. Unknown ids are their own root.
func (r *Regions) Find(id int) int {
	root := id
	for {
		parent, ok := r.parent[root]
		if !ok || parent == root {
			break
		}
		root = parent
	}
	for id != root {
		next := r.parent[id]
		r.parent[id] = root
		id = next
	}
	return root
}

// Union merges the components of a and b, returning false if they were already one
func (r *Regions) Union(a, b int) bool {
	r.Add(a)
	r.Add(b)
	rootA, rootB := r.Find(a), r.Find(b)
	if rootA == rootB {
		return false
	}
	if rootA < rootB {
		r.parent[rootB] = rootA
	} else {
		r.parent[rootA] = rootB
	}
	return true
}

// Same returns true if a and b are in the same component
func (r *Regions) Same(a, b int) bool {
	return r.Find(a) == r.Find(b)
}

// Len returns the number of known ids
func (r *Regions) Len() int {
	return len(r.parent)
}

// Components returns the number of distinct components
func (r *Regions) Components() int {
	n := 0
	for id, parent := range r.parent {
		if id == parent {
			n++
		}
	}
	return n
}

// reduceConnectivity walks the doors in order and hides most of those whose
// two sides are already joined, which turns the region graph into a tree
// plus a few extra loops.
func (g *Generator[G]) reduceConnectivity() {
	for _, room := range g.rooms {
		g.regions.Add(room.ID)
	}
	for _, hall := range g.halls {
		g.regions.Add(hall.ID)
	}

	for i := range g.doors {
		door := &g.doors[i]
		if !g.regions.Same(door.RoomID, door.HallID) {
			g.regions.Union(door.RoomID, door.HallID)
			continue
		}
		if g.rng.Float64() >= g.cfg.ExtraConnectionChance {
			g.hideDoor(door)
		}
	}
}

// hideDoor turns door back into wall
func (g *Generator[G]) hideDoor(door *world.Door) {
	door.Hidden = true
	world.SetRegionAt(g.grid, door.Position, world.NothingID)
}
