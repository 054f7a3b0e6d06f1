// Package ebiten provides an Ebiten-based 2D viewer for generated mazes.
package ebiten

import (
	"image/color"

	"mazegen/pkg/game/renderer"
)

// Color palette for the viewer
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorWall       = color.RGBA{60, 60, 80, 255}    // Darker than the floor
	colorHall       = color.RGBA{100, 100, 120, 255} // Medium gray
	colorRoom       = color.RGBA{160, 160, 180, 255} // Lighter gray
	colorDoor       = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorConstraint = color.RGBA{0, 255, 100, 255}   // Bright green
)

var kindColors = map[renderer.Kind]color.Color{
	renderer.KindWall:       colorWall,
	renderer.KindHall:       colorHall,
	renderer.KindRoom:       colorRoom,
	renderer.KindDoor:       colorDoor,
	renderer.KindConstraint: colorConstraint,
}

const (
	// DefaultTileSize is the side of one maze cell in pixels
	DefaultTileSize = 12
	// statusLineHeight is the pixel height of one debug text line
	statusLineHeight = 16
	// statusLines is how many text lines are kept under the map
	statusLines = 4
)
