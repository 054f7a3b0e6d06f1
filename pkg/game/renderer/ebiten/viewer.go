package ebiten

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazegen/pkg/engine/input"
	"mazegen/pkg/game/renderer"
)

// keyCodes maps the keys the viewer listens to onto input binding codes
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// EbitenRenderer shows a maze in a window and asks for a new one on key press
type EbitenRenderer struct {
	tileSize   int
	regenerate func() *renderer.Frame
	dump       func(*renderer.Frame)

	mu       sync.RWMutex
	frame    *renderer.Frame
	messages []string
	keyHelp  string

	windowOpenedLogged bool
}

// New creates a viewer. regenerate is called for a new frame when
// Space, Enter or R is pressed; it may be nil.
func New(tileSize int, regenerate func() *renderer.Frame) *EbitenRenderer {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &EbitenRenderer{tileSize: tileSize, regenerate: regenerate}
}

// isViewerKey reports whether a binding code has a key the viewer listens to
func isViewerKey(code string) bool {
	for _, kc := range keyCodes {
		if kc.code == code {
			return true
		}
	}
	return false
}

// SetDumpHandler sets what D does with the shown frame
func (e *EbitenRenderer) SetDumpHandler(dump func(*renderer.Frame)) {
	e.dump = dump
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	e.keyHelp = renderer.KeyHelp(isViewerKey)
	ebiten.SetWindowTitle("Rooms and Mazes")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.resizeWindow()
}

// Clear drops the current frame and messages
func (e *EbitenRenderer) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frame = nil
	e.messages = nil
}

// RenderFrame replaces the frame shown by the window
func (e *EbitenRenderer) RenderFrame(f *renderer.Frame) {
	e.mu.Lock()
	e.frame = f
	e.messages = renderer.TranslateAll(f.Warnings)
	e.mu.Unlock()
	e.resizeWindow()
}

// StyleText returns text unchanged, colours are applied while drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// ShowMessage adds a line under the map
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.messages = append(e.messages, msg)
}

// GetViewportSize returns the size of the shown maze in cells
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.frame == nil {
		return 0, 0
	}
	return e.frame.Grid.Height(), e.frame.Grid.Width()
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	for _, kc := range keyCodes {
		if !inpututil.IsKeyJustPressed(kc.key) {
			continue
		}
		if err := e.handleIntent(input.IntentFor(input.DeviceKeyboard, kc.code)); err != nil {
			return err
		}
	}
	return nil
}

func (e *EbitenRenderer) handleIntent(intent input.Intent) error {
	switch intent.Action {
	case input.ActionQuit:
		return ebiten.Termination
	case input.ActionRegenerate:
		if e.regenerate != nil {
			e.RenderFrame(e.regenerate())
		}
	case input.ActionDump:
		e.mu.RLock()
		frame := e.frame
		e.mu.RUnlock()
		if e.dump != nil && frame != nil {
			e.dump(frame)
		}
	}
	return nil
}

// Draw renders the maze and the status lines (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.frame == nil {
		return
	}

	ts := float32(e.tileSize)
	grid := e.frame.Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			kind := e.frame.Classify(x, y)
			var clr color.Color = colorWall
			if c, ok := kindColors[kind]; ok {
				clr = c
			}
			vector.DrawFilledRect(screen, float32(x)*ts, float32(y)*ts, ts, ts, clr, false)
		}
	}

	textY := grid.Height()*e.tileSize + 2
	status := fmt.Sprintf("%s  seed %d  rooms %d  doors %d  %s",
		e.frame.GeneratorName, e.frame.Seed, len(e.frame.Rooms), len(e.frame.VisibleDoors()), e.keyHelp)
	ebitenutil.DebugPrintAt(screen, status, 4, textY)
	for i, msg := range e.messages {
		if i+1 >= statusLines {
			break
		}
		ebitenutil.DebugPrintAt(screen, "! "+msg, 4, textY+(i+1)*statusLineHeight)
	}
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenSize()
}

// Run starts the Ebiten game loop
func (e *EbitenRenderer) Run() error {
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten viewer: %w", err)
	}
	return nil
}

func (e *EbitenRenderer) screenSize() (int, int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.frame == nil {
		return 640, 480
	}
	width := e.frame.Grid.Width() * e.tileSize
	height := e.frame.Grid.Height()*e.tileSize + statusLines*statusLineHeight
	return width, height
}

func (e *EbitenRenderer) resizeWindow() {
	ebiten.SetWindowSize(e.screenSize())
}
