package world

// Tiles is the default dense grid backend, addressed [y][x]
type Tiles struct {
	cells [][]int
}

// NewTiles creates a width x height grid filled with NothingID.
// Non-positive dimensions give an empty grid.
func NewTiles(width, height int) *Tiles {
	t := &Tiles{}
	if width <= 0 || height <= 0 {
		return t
	}
	t.cells = make([][]int, height)
	for y := range t.cells {
		row := make([]int, width)
		for x := range row {
			row[x] = NothingID
		}
		t.cells[y] = row
	}
	return t
}

// Width returns the number of columns
func (t *Tiles) Width() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Height returns the number of rows
func (t *Tiles) Height() int {
	return len(t.cells)
}

// Region returns the region id at (x, y), or NothingID out of bounds
func (t *Tiles) Region(x, y int) int {
	if !InBounds(t, x, y) {
		return NothingID
	}
	return t.cells[y][x]
}

// SetRegion writes id at (x, y). Returns false if out of bounds.
func (t *Tiles) SetRegion(x, y, id int) bool {
	if !InBounds(t, x, y) {
		return false
	}
	t.cells[y][x] = id
	return true
}

// Clear releases the cells
func (t *Tiles) Clear() {
	t.cells = nil
}

// Rows returns a copy of the cells as [y][x] region ids
func (t *Tiles) Rows() [][]int {
	rows := make([][]int, len(t.cells))
	for y, row := range t.cells {
		rows[y] = append([]int(nil), row...)
	}
	return rows
}
