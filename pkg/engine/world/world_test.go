package world

import (
	"testing"
)

func TestDirections(t *testing.T) {
	for _, d := range Cardinals() {
		if !d.IsValid() {
			t.Errorf("%v is not valid", d)
		}
		if back := d.Neg(); back.Neg() != d || !back.IsValid() {
			t.Errorf("%v.Neg() = %v", d, back)
		}
	}
	if North.Neg() != South || East.Neg() != West {
		t.Error("Neg does not give the opposite direction")
	}
	if got := East.Scale(2); got != (Direction{DX: 2, DY: 0}) {
		t.Errorf("East.Scale(2) = %+v", got)
	}
	if East.Scale(2).IsValid() {
		t.Error("a two-cell step is reported as valid")
	}
	if North.String() != "North" || (Direction{}).String() != "Unknown" {
		t.Errorf("String() = %q, %q", North.String(), (Direction{}).String())
	}
}

func TestCardinalsIsCopy(t *testing.T) {
	dirs := Cardinals()
	dirs[0] = West
	if Cardinals()[0] != North {
		t.Error("Cardinals() shares its backing array")
	}
}

func TestPositionOrder(t *testing.T) {
	set := NewPositionSet(
		Position{X: 3, Y: 1},
		Position{X: 1, Y: 5},
		Position{X: 1, Y: 3},
		Position{X: 2, Y: 0},
	)
	want := []Position{{1, 3}, {1, 5}, {2, 0}, {3, 1}}
	got := SortedPositions(set)
	if len(got) != len(want) {
		t.Fatalf("SortedPositions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedPositions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if p := (Position{X: 1, Y: 1}).Add(South.Scale(2)); p != (Position{X: 1, Y: 3}) {
		t.Errorf("Add = %v", p)
	}
	if !(Position{X: 3, Y: 5}).IsOdd() || (Position{X: 3, Y: 4}).IsOdd() {
		t.Error("IsOdd misclassifies")
	}
}

func TestIDRanges(t *testing.T) {
	tests := []struct {
		id                 int
		hall, room, isDoor bool
	}{
		{NothingID, false, false, false},
		{1, true, false, false},
		{MaxRooms - 1, true, false, false},
		{RoomIDStart, false, true, false},
		{DoorIDStart - 1, false, true, false},
		{DoorIDStart + 1, false, false, true},
	}
	for _, tt := range tests {
		if IsHallID(tt.id) != tt.hall || IsRoomID(tt.id) != tt.room || IsDoorID(tt.id) != tt.isDoor {
			t.Errorf("id %d classified hall=%v room=%v door=%v", tt.id, IsHallID(tt.id), IsRoomID(tt.id), IsDoorID(tt.id))
		}
	}
}

func testGrids(width, height int) map[string]Grid {
	return map[string]Grid{
		"tiles":  NewTiles(width, height),
		"sparse": NewSparseGrid(width, height),
	}
}

func TestGridBackends(t *testing.T) {
	for name, g := range testGrids(5, 3) {
		if g.Width() != 5 || g.Height() != 3 {
			t.Errorf("%s: size %dx%d, want 5x3", name, g.Width(), g.Height())
		}
		if g.SetRegion(0, 1, 1) {
			t.Errorf("%s: SetRegion on the border succeeded", name)
		}
		if !g.SetRegion(2, 1, 7) {
			t.Errorf("%s: SetRegion(2, 1) failed", name)
		}
		if got := g.Region(2, 1); got != 7 {
			t.Errorf("%s: Region(2, 1) = %d, want 7", name, got)
		}
		if got := g.Region(-1, 9); got != NothingID {
			t.Errorf("%s: Region out of range = %d", name, got)
		}
		if !IsWall(g, 1, 1) || IsWall(g, 2, 1) || IsWall(g, 0, 0) {
			t.Errorf("%s: IsWall misclassifies", name)
		}
		if !IsEmpty(g, 0, 0) || !IsEmpty(g, 1, 1) || IsEmpty(g, 2, 1) {
			t.Errorf("%s: IsEmpty misclassifies", name)
		}
		g.SetRegion(2, 1, NothingID)
		if !IsWall(g, 2, 1) {
			t.Errorf("%s: writing NothingID did not restore the wall", name)
		}
		g.Clear()
		if g.Width() != 0 || g.Height() != 0 {
			t.Errorf("%s: size after Clear = %dx%d", name, g.Width(), g.Height())
		}
	}
}

func TestEmptyGrids(t *testing.T) {
	for name, g := range testGrids(0, -1) {
		if g.Width() != 0 || g.Height() != 0 || InBounds(g, 0, 0) {
			t.Errorf("%s: degenerate grid is %dx%d", name, g.Width(), g.Height())
		}
	}
}

func TestSparseGridCarvedCount(t *testing.T) {
	g := NewSparseGrid(7, 7)
	g.SetRegion(1, 1, 1)
	g.SetRegion(2, 1, 1)
	g.SetRegion(1, 3, 2)
	g.SetRegion(2, 1, NothingID)
	if got := g.CarvedCount(); got != 2 {
		t.Errorf("CarvedCount() = %d, want 2", got)
	}
}

func TestIsDeadEnd(t *testing.T) {
	// Carve an L: (1,1) (2,1) (3,1) (3,2) (3,3)
	g := NewTiles(5, 5)
	for _, p := range []Position{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}} {
		SetRegionAt(g, p, 1)
	}
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{1, 1}, true},
		{Position{3, 3}, true},
		{Position{2, 1}, false},
		{Position{3, 1}, false},
		{Position{2, 2}, false},
	}
	for _, tt := range tests {
		if got := IsDeadEnd(g, tt.p); got != tt.want {
			t.Errorf("IsDeadEnd(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := Passways(g, Position{X: 3, Y: 1}); got != 2 {
		t.Errorf("Passways((3, 1)) = %d, want 2", got)
	}
}

func TestForEachCell(t *testing.T) {
	g := NewTiles(3, 3)
	g.SetRegion(1, 1, 4)
	cells, carved := 0, 0
	ForEachCell(g, func(x, y, region int) {
		cells++
		if region != NothingID {
			carved++
		}
	})
	if cells != 9 || carved != 1 {
		t.Errorf("ForEachCell visited %d cells with %d carved, want 9 and 1", cells, carved)
	}
}

func TestRoomTooClose(t *testing.T) {
	a := Room{MinPoint: Position{1, 1}, MaxPoint: Position{5, 5}}
	tests := []struct {
		b    Room
		want bool
	}{
		{Room{MinPoint: Position{7, 1}, MaxPoint: Position{9, 3}}, false},
		{Room{MinPoint: Position{5, 5}, MaxPoint: Position{9, 9}}, true},
		{Room{MinPoint: Position{3, 3}, MaxPoint: Position{3, 3}}, true},
		{Room{MinPoint: Position{1, 7}, MaxPoint: Position{5, 9}}, false},
	}
	for _, tt := range tests {
		if got := a.TooClose(tt.b, 1); got != tt.want {
			t.Errorf("TooClose(%+v) = %v, want %v", tt.b, got, tt.want)
		}
		if got := tt.b.TooClose(a, 1); got != tt.want {
			t.Errorf("reverse TooClose(%+v) = %v, want %v", tt.b, got, tt.want)
		}
	}
	if a.Width() != 5 || a.Height() != 5 || !a.HasPoint(Position{5, 1}) || a.HasPoint(Position{6, 1}) {
		t.Error("Room geometry helpers misbehave")
	}
}

func TestDoor(t *testing.T) {
	d := Door{ID: DoorIDStart + 3, RoomID: RoomIDStart, HallID: 2}
	if !d.Connects(2) || d.Connects(5) {
		t.Error("Connects misreports")
	}
	if d.Other(RoomIDStart) != 2 || d.Other(2) != RoomIDStart || d.Other(9) != NothingID {
		t.Error("Other misreports")
	}
	if d.DoorName() != "Door 3" {
		t.Errorf("DoorName() = %q", d.DoorName())
	}
}
