// Package event defines the events a running document delivers to its owner:
// decoded terminal input forwarded by the render loop and per-frame notifications.
package event

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ccui/node"
)

// Event is a single UI event
// Only the fields listed for its Type are meaningful
type Event struct {
	Type Type
	When time.Time

	// Key events
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask

	// Mouse events, Target is the deepest node under the pointer at the last paint
	X, Y    int
	Mouse   MouseKind
	Buttons tcell.ButtonMask
	Target  node.ID

	// Resize events
	Width  int
	Height int

	// Paste and focus events
	Paste   bool
	Focused bool

	// Frame events
	Frame   uint64
	Elapsed time.Duration
	Err     error
}

// IsRune reports whether the event is a key press of the printable rune r
func (e Event) IsRune(r rune) bool {
	return e.Type == TypeKey && e.Key == tcell.KeyRune && e.Rune == r
}

// String returns a compact human-readable form used in logs
func (e Event) String() string {
	switch e.Type {
	case TypeKey:
		return fmt.Sprintf("Key(%s)", tcell.NewEventKey(e.Key, e.Rune, e.Mod).Name())
	case TypeMouse:
		return fmt.Sprintf("Mouse(%s %d,%d btn=%d target=%q)", e.Mouse, e.X, e.Y, e.Buttons, e.Target)
	case TypeResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height)
	case TypePaste:
		return fmt.Sprintf("Paste(start=%t)", e.Paste)
	case TypeFocus:
		return fmt.Sprintf("Focus(%t)", e.Focused)
	case TypeTick, TypePaintDone:
		return fmt.Sprintf("%s(#%d)", e.Type, e.Frame)
	case TypePaintError:
		return fmt.Sprintf("PaintError(#%d: %v)", e.Frame, e.Err)
	default:
		return e.Type.String()
	}
}

// MouseKind classifies a mouse event
type MouseKind uint8

const (
	// MouseMove is pointer motion with no button held, also reported on release
	MouseMove MouseKind = iota
	// MousePress is a button held down, repeated while dragging
	MousePress
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var mouseNames = [...]string{
	MouseMove:        "move",
	MousePress:       "press",
	MouseScrollUp:    "scroll-up",
	MouseScrollDown:  "scroll-down",
	MouseScrollLeft:  "scroll-left",
	MouseScrollRight: "scroll-right",
}

// String returns the kind name
func (k MouseKind) String() string {
	if int(k) < len(mouseNames) {
		return mouseNames[k]
	}
	return "unknown"
}

const anyButton = tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 |
	tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8

// mouseKind derives the kind from a tcell button mask, wheel motion wins over held buttons
func mouseKind(b tcell.ButtonMask) MouseKind {
	switch {
	case b&tcell.WheelUp != 0:
		return MouseScrollUp
	case b&tcell.WheelDown != 0:
		return MouseScrollDown
	case b&tcell.WheelLeft != 0:
		return MouseScrollLeft
	case b&tcell.WheelRight != 0:
		return MouseScrollRight
	case b&anyButton != 0:
		return MousePress
	default:
		return MouseMove
	}
}
