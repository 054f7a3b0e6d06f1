package world

// SparseGrid is a grid backend that only stores carved cells.
// Walls are implicit, which keeps mostly-empty mazes small.
type SparseGrid struct {
	regionMap map[int]map[int]int
	width     int
	height    int
}

// NewSparseGrid creates a new sparse grid with the given dimensions
func NewSparseGrid(width, height int) *SparseGrid {
	g := &SparseGrid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions, dropping all cells
func (g *SparseGrid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	g.width = width
	g.height = height
	g.regionMap = make(map[int]map[int]int, height)
}

// Width returns the number of columns in the grid
func (g *SparseGrid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *SparseGrid) Height() int {
	return g.height
}

// Region returns the region id at (x, y), or NothingID if out of bounds or never carved
func (g *SparseGrid) Region(x, y int) int {
	if !InBounds(g, x, y) {
		return NothingID
	}
	rowMap, found := g.regionMap[y]
	if !found {
		return NothingID
	}
	id, found := rowMap[x]
	if !found {
		return NothingID
	}
	return id
}

// SetRegion stores id at (x, y). Writing NothingID deletes the cell.
// Returns false if out of bounds.
func (g *SparseGrid) SetRegion(x, y, id int) bool {
	if !InBounds(g, x, y) {
		return false
	}
	rowMap, found := g.regionMap[y]
	if id == NothingID {
		if found {
			delete(rowMap, x)
			if len(rowMap) == 0 {
				delete(g.regionMap, y)
			}
		}
		return true
	}
	if !found {
		rowMap = make(map[int]int)
		g.regionMap[y] = rowMap
	}
	rowMap[x] = id
	return true
}

// Clear drops all cells and resets the dimensions to zero
func (g *SparseGrid) Clear() {
	g.Build(0, 0)
}

// CarvedCount returns the number of stored (non-wall) cells
func (g *SparseGrid) CarvedCount() int {
	n := 0
	for _, rowMap := range g.regionMap {
		n += len(rowMap)
	}
	return n
}
