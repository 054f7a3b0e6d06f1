package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent of the viewer user.
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionDump
	ActionQuit
)

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "space", "enter", "q").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Terminal lines and Ebiten's IsKeyJustPressed are already debounced, so
// this only normalizes the code.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Regenerate
	"":      ActionRegenerate, // bare Enter in the terminal
	"enter": ActionRegenerate,
	"space": ActionRegenerate,
	"r":     ActionRegenerate,
	"n":     ActionRegenerate,
	"new":   ActionRegenerate,

	// Dump
	"d":    ActionDump,
	"dump": ActionDump,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the bindings to a debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor is MapToIntent for a code read from device
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "New maze"
	case ActionDump:
		return "Dump map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
