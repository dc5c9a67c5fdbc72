package event

// Type represents the kind of UI event delivered to the document
type Type uint8

const (
	// TypeNone is the zero value, never delivered
	TypeNone Type = iota

	// === Input Events ===

	// TypeKey is a key press
	// Trigger: terminal input | Fields: Key, Rune, Mod
	TypeKey

	// TypeMouse is a button press/release, wheel motion or pointer motion
	// Trigger: terminal input (mouse enabled) | Fields: X, Y, Buttons, Mod, Target
	TypeMouse

	// TypeResize reports new terminal dimensions
	// Trigger: terminal input | Fields: Width, Height
	TypeResize

	// TypePaste marks the start or end of a bracketed paste
	// Trigger: terminal input | Fields: Paste (true on start)
	TypePaste

	// TypeFocus reports terminal window focus changes
	// Trigger: terminal input | Fields: Focused
	TypeFocus

	// === Frame Events ===

	// TypeTick is a frame tick without a paint pass (headless loop)
	// Trigger: frame clock | Fields: Frame
	TypeTick

	// TypePaintDone follows a successful paint pass
	// Trigger: frame clock | Fields: Frame, Elapsed
	TypePaintDone

	// TypePaintError follows a failed paint pass
	// Trigger: frame clock | Fields: Frame, Elapsed, Err
	TypePaintError
)

var typeNames = [...]string{
	TypeNone:       "None",
	TypeKey:        "Key",
	TypeMouse:      "Mouse",
	TypeResize:     "Resize",
	TypePaste:      "Paste",
	TypeFocus:      "Focus",
	TypeTick:       "Tick",
	TypePaintDone:  "PaintDone",
	TypePaintError: "PaintError",
}

// String returns the type name
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// IsInput reports whether the type originates from terminal input
func (t Type) IsInput() bool {
	return t >= TypeKey && t <= TypeFocus
}

// IsFrame reports whether the type is produced by the frame clock
// Undelivered frame events are coalesced, input events never are
func (t Type) IsFrame() bool {
	return t >= TypeTick && t <= TypePaintError
}
