package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleHall
	StyleRoom
	StyleDoor
	StyleConstraint
	StyleWarning
	StyleSubtle
)

// Renderer defines the interface for maze rendering backends
// Implementations can include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a generated maze with its legend and warnings
	RenderFrame(f *Frame)

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it returns the text unchanged
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols) in cells
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a frame with the current renderer
func RenderFrame(f *Frame) {
	if Current != nil {
		Current.RenderFrame(f)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 21, 39 // sensible defaults
}
