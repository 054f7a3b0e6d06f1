// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/renderer"
)

// DefaultDumpFilename is used when DumpToFile gets an empty path
const DefaultDumpFilename = "map.txt"

var kindSymbols = map[renderer.Kind]rune{
	renderer.KindWall:       '#',
	renderer.KindHall:       '.',
	renderer.KindRoom:       'r',
	renderer.KindDoor:       'D',
	renderer.KindConstraint: 'C',
}

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(f *renderer.Frame, x, y int) rune {
	if symbol, ok := kindSymbols[f.Classify(x, y)]; ok {
		return symbol
	}
	return '?'
}

// writeMapGrid writes the grid with one character per cell
func writeMapGrid(w io.Writer, f *renderer.Frame) {
	for y := 0; y < f.Grid.Height(); y++ {
		for x := 0; x < f.Grid.Width(); x++ {
			fmt.Fprintf(w, "%c", cellSymbol(f, x, y))
		}
		fmt.Fprintln(w)
	}
}

// roomExits lists the regions reached from a room through its visible doors
func roomExits(f *renderer.Frame, roomID int) string {
	var exits []string
	for _, d := range f.VisibleDoors() {
		if d.Connects(roomID) {
			exits = append(exits, strconv.Itoa(d.Other(roomID)))
		}
	}
	if len(exits) == 0 {
		return "-"
	}
	return strings.Join(exits, ",")
}

// Dump writes a full debug dump of a frame: metadata, legend, map, and the
// room/hall/door/dead-end/warning lists. Sections use "key: value" lines so
// the output stays easy to diff and grep.
func Dump(w io.Writer, f *renderer.Frame) error {
	if f == nil || f.Grid == nil {
		return fmt.Errorf("no grid")
	}
	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (rooms, halls, doors) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "generator: %s\n", f.GeneratorName)
	fmt.Fprintf(bw, "seed: %d\n", f.Seed)
	fmt.Fprintf(bw, "width: %d\n", f.Grid.Width())
	fmt.Fprintf(bw, "height: %d\n", f.Grid.Height())
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, "# = wall  . = hall  r = room  D = door  C = constraint")
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	writeMapGrid(bw, f)
	fmt.Fprintln(bw, "")

	fmt.Fprintf(bw, "Rooms (%d):\n", len(f.Rooms))
	for _, r := range f.Rooms {
		fmt.Fprintf(bw, "  id: %d min: %d,%d max: %d,%d size: %dx%d exits: %s\n",
			r.ID, r.MinPoint.X, r.MinPoint.Y, r.MaxPoint.X, r.MaxPoint.Y, r.Width(), r.Height(), roomExits(f, r.ID))
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintf(bw, "Halls (%d):\n", len(f.Halls))
	for _, h := range f.Halls {
		fmt.Fprintf(bw, "  id: %d start: %d,%d\n", h.ID, h.Start.X, h.Start.Y)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintf(bw, "Doors (%d):\n", len(f.Doors))
	for _, d := range f.Doors {
		fmt.Fprintf(bw, "  name: %q at: %d,%d joins: %d,%d hidden: %v\n",
			d.DoorName(), d.Position.X, d.Position.Y, d.RoomID, d.HallID, d.Hidden)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintf(bw, "Dead ends (%d):\n", len(f.DeadEnds))
	for _, p := range f.DeadEnds {
		fmt.Fprintf(bw, "  at: %d,%d\n", p.X, p.Y)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintf(bw, "Constraints (%d):\n", f.Constraints.Size())
	for _, p := range world.SortedPositions(f.Constraints) {
		fmt.Fprintf(bw, "  at: %d,%d region: %d\n", p.X, p.Y, world.RegionAt(f.Grid, p))
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintf(bw, "Warnings (%d):\n", len(f.Warnings))
	for _, warning := range f.Warnings {
		fmt.Fprintf(bw, "  %s\n", warning)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write map dump: %w", err)
	}
	return nil
}

// DumpToFile writes Dump to path (DefaultDumpFilename if empty) and returns
// the absolute path written.
func DumpToFile(path string, f *renderer.Frame) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	out, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer out.Close()

	if err := Dump(out, f); err != nil {
		return "", err
	}
	return absPath, nil
}
