package world

// Region id space. Halls, rooms and doors use disjoint ranges so an id can be
// classified without a type tag.
const (
	NothingID   = -1
	MaxRooms    = 1000000
	HallIDStart = 0
	RoomIDStart = MaxRooms
	DoorIDStart = MaxRooms * 2
)

// IsHallID returns true if id belongs to a hall region
func IsHallID(id int) bool {
	return id >= HallIDStart && id < RoomIDStart
}

// IsRoomID returns true if id belongs to a room
func IsRoomID(id int) bool {
	return id >= RoomIDStart && id < DoorIDStart
}

// IsDoorID returns true if id belongs to a door
func IsDoorID(id int) bool {
	return id >= DoorIDStart
}
