// Package tui draws generated mazes on a colour terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/game/renderer"
)

// Icons for each cell kind, drawn twice per cell to keep cells square
const (
	IconWall       = "▒"
	IconHall       = "░"
	IconRoom       = "█"
	IconDoor       = "▣"
	IconConstraint = "◆"
)

// LegendRows is how many terminal lines RenderFrame prints below the map,
// not counting warnings.
const LegendRows = 3

var kindIcons = map[renderer.Kind]string{
	renderer.KindWall:       IconWall + IconWall,
	renderer.KindHall:       IconHall + IconHall,
	renderer.KindRoom:       IconRoom + IconRoom,
	renderer.KindDoor:       IconDoor + " ",
	renderer.KindConstraint: IconConstraint + " ",
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorWall       color.Style
	colorHall       color.Style
	colorRoom       color.Style
	colorDoor       color.Style
	colorConstraint color.Style
	colorWarning    color.Style
	colorSubtle     color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to out
func NewWithWriter(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorHall = color.Style{color.FgBlue}
	t.colorRoom = color.Style{color.FgWhite}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorConstraint = color.Style{color.FgGreen, color.OpBold}
	t.colorWarning = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:\-]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !terminal.IsTerminal() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleHall:
		return t.colorHall.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleConstraint:
		return t.colorConstraint.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system.
// GT{key} translates key, the other functions colour their operand.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "HALL":
			val = t.colorHall.Sprint(operand)
		case "DOOR":
			val = t.colorDoor.Sprint(operand)
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the maze size in cells that fits the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = terminal.MazeSize(LegendRows)
	return rows, cols
}

// RenderFrame prints the maze, a legend, a summary line and any warnings
func (t *TUIRenderer) RenderFrame(f *renderer.Frame) {
	var sb strings.Builder
	t.renderMap(&sb, f)
	sb.WriteString(t.renderLegend())
	sb.WriteString("\n")
	sb.WriteString(t.FormatText("GT{Seed}: SUBTLE{%d}  GT{Rooms}: ROOM{%d}  GT{Halls}: HALL{%d}  GT{Doors}: DOOR{%d}",
		f.Seed, len(f.Rooms), len(f.Halls), len(f.VisibleDoors())))
	sb.WriteString("\n")
	for _, msg := range renderer.TranslateAll(f.Warnings) {
		sb.WriteString(t.colorWarning.Sprint("! "))
		sb.WriteString(msg)
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())
}

func (t *TUIRenderer) renderMap(sb *strings.Builder, f *renderer.Frame) {
	for y := 0; y < f.Grid.Height(); y++ {
		for x := 0; x < f.Grid.Width(); x++ {
			kind := f.Classify(x, y)
			sb.WriteString(t.StyleText(kindIcons[kind], kind.Style()))
		}
		sb.WriteString("\n")
	}
}

func (t *TUIRenderer) renderLegend() string {
	parts := make([]string, 0, len(renderer.Kinds))
	for _, kind := range renderer.Kinds {
		parts = append(parts, t.StyleText(kindIcons[kind], kind.Style())+" "+renderer.Label(kind))
	}
	return strings.Join(parts, "  ")
}
