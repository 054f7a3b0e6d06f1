package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// CellColumns is how many terminal columns one maze cell takes
const CellColumns = 2

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// MazeSize returns the largest odd maze dimensions that fit the terminal,
// leaving reservedRows lines free below the map.
func MazeSize(reservedRows int) (width, height int) {
	cols, rows := GetSize()
	return FitMaze(cols, rows, reservedRows)
}

// FitMaze returns the largest odd maze dimensions fitting cols x rows
// characters, never smaller than 3x3.
func FitMaze(cols, rows, reservedRows int) (width, height int) {
	width = oddFloor(cols / CellColumns)
	height = oddFloor(rows - reservedRows)
	return width, height
}

func oddFloor(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < 3 {
		return 3
	}
	return n
}
