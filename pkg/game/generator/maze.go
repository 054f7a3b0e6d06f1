package generator

import (
	"github.com/zyedidia/generic/stack"

	"mazegen/pkg/engine/world"
)

// buildMaze fills every wall node left between the rooms with halls.
// Halls are grown from unmet constraints first, so each constraint ends up
// inside some hall, then from every remaining odd/odd wall cell, column by
// column.
func (g *Generator[G]) buildMaze() {
	unmet := world.SortedPositions(g.constraints)
	for len(unmet) > 0 {
		constraint := unmet[len(unmet)-1]
		unmet = unmet[:len(unmet)-1]
		if !world.IsWallAt(g.grid, constraint) {
			continue
		}
		g.growMaze(constraint)
	}

	width := g.grid.Width()
	height := g.grid.Height()
	for halfX := 0; halfX < width/2; halfX++ {
		for halfY := 0; halfY < height/2; halfY++ {
			node := world.Position{X: halfX*2 + 1, Y: halfY*2 + 1}
			if world.IsWallAt(g.grid, node) {
				g.growMaze(node)
			}
		}
	}
}

// growMaze carves one hall from a wall node with a randomized depth-first
// search over the odd lattice. Every step carves two cells, so halls stay one
// cell wide with walls between parallel runs. Dead ends met while
// backtracking are recorded for reduceMaze.
func (g *Generator[G]) growMaze(from world.Position) {
	if !world.IsWallAt(g.grid, from) {
		return
	}
	g.hallID++
	g.halls = append(g.halls, world.Hall{Start: from, ID: g.hallID})
	world.SetRegionAt(g.grid, from, g.hallID)

	path := stack.New[world.Position]()
	path.Push(from)
	directions := world.Cardinals()
	var last world.Direction
	p := from

	for path.Size() > 0 {
		if g.rng.Float64() < g.cfg.WiggleChance {
			g.shuffleDirections(&directions, last)
		}

		dir, found := g.growthDirection(p, directions)
		if !found {
			// Lone cells are kept too, they turn into dead ends once a door reaches them
			if world.Passways(g.grid, p) <= 1 {
				g.deadEnds = append(g.deadEnds, p)
			}
			path.Pop()
			p = path.Peek()
			continue
		}

		last = dir
		p = p.Add(dir)
		world.SetRegionAt(g.grid, p, g.hallID)
		p = p.Add(dir)
		world.SetRegionAt(g.grid, p, g.hallID)
		path.Push(p)
	}
}

// shuffleDirections reorders directions randomly, moving the last used one
// to the back so the hall is least likely to keep going straight.
func (g *Generator[G]) shuffleDirections(directions *[4]world.Direction, last world.Direction) {
	g.rng.Shuffle(len(directions), func(i, j int) {
		directions[i], directions[j] = directions[j], directions[i]
	})
	if !last.IsValid() {
		return
	}
	for i, d := range directions {
		if d == last {
			directions[i], directions[len(directions)-1] = directions[len(directions)-1], directions[i]
			break
		}
	}
}

// growthDirection returns the first direction whose node two cells away is a wall
func (g *Generator[G]) growthDirection(p world.Position, directions [4]world.Direction) (world.Direction, bool) {
	for _, d := range directions {
		if world.IsWallAt(g.grid, p.Add(d.Scale(2))) {
			return d, true
		}
	}
	return world.Direction{}, false
}
