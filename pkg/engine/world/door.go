package world

import "fmt"

// Door is a single cell joining a room to a hall, two rooms, or (for
// reconnected dead ends) a hall to another region.
// Hidden doors were removed from the grid but are kept for introspection.
type Door struct {
	Position Position
	ID       int
	RoomID   int
	HallID   int
	Hidden   bool
}

// Connects returns true if the door touches the region with the given id
func (d Door) Connects(id int) bool {
	return d.RoomID == id || d.HallID == id
}

// Other returns the region on the other side of the door from id,
// or NothingID if the door does not touch id
func (d Door) Other(id int) int {
	switch id {
	case d.RoomID:
		return d.HallID
	case d.HallID:
		return d.RoomID
	default:
		return NothingID
	}
}

// DoorName returns the display name for this door
func (d Door) DoorName() string {
	return fmt.Sprintf("Door %d", d.ID-DoorIDStart)
}
