package world

// Room is an axis-aligned rectangle of floor; both corners are inclusive
type Room struct {
	MinPoint Position
	MaxPoint Position
	ID       int
}

// Hall identifies one corridor region by a cell that belonged to it when carved
type Hall struct {
	Start Position
	ID    int
}

// Width returns the number of columns the room spans
func (r Room) Width() int {
	return r.MaxPoint.X - r.MinPoint.X + 1
}

// Height returns the number of rows the room spans
func (r Room) Height() int {
	return r.MaxPoint.Y - r.MinPoint.Y + 1
}

// TooClose returns true if another room comes within distance cells of r.
// With distance 1 two rooms must keep at least one wall cell between them.
func (r Room) TooClose(another Room, distance int) bool {
	return r.MinPoint.X-distance < another.MaxPoint.X &&
		r.MaxPoint.X+distance > another.MinPoint.X &&
		r.MinPoint.Y-distance < another.MaxPoint.Y &&
		r.MaxPoint.Y+distance > another.MinPoint.Y
}

// HasPoint returns true if p lies inside the room
func (r Room) HasPoint(p Position) bool {
	return p.X >= r.MinPoint.X && p.X <= r.MaxPoint.X &&
		p.Y >= r.MinPoint.Y && p.Y <= r.MaxPoint.Y
}
