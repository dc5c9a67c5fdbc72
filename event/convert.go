package event

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a decoded tcell event
// Returns false for event kinds the document does not surface (interrupts, clipboard, errors)
func FromTcell(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: TypeKey,
			When: e.When(),
			Key:  e.Key(),
			Rune: e.Rune(),
			Mod:  e.Modifiers(),
		}, true

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:    TypeMouse,
			When:    e.When(),
			X:       x,
			Y:       y,
			Mouse:   mouseKind(e.Buttons()),
			Buttons: e.Buttons(),
			Mod:     e.Modifiers(),
		}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   TypeResize,
			When:   e.When(),
			Width:  w,
			Height: h,
		}, true

	case *tcell.EventPaste:
		return Event{
			Type:  TypePaste,
			When:  e.When(),
			Paste: e.Start(),
		}, true

	case *tcell.EventFocus:
		// tcell leaves the focus event timestamp unset
		return Event{
			Type:    TypeFocus,
			When:    time.Now(),
			Focused: e.Focused,
		}, true
	}
	return Event{}, false
}
