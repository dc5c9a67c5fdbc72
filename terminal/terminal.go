package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrDim           Attr = 1 << 1
	AttrItalic        Attr = 1 << 2
	AttrUnderline     Attr = 1 << 3
	AttrBlink         Attr = 1 << 4
	AttrReverse       Attr = 1 << 5
	AttrStrikeThrough Attr = 1 << 6
)

// Cell represents a single terminal cell
// Rune 0 is drawn as a space
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	Attrs Attr
}

// ErrFinalized is returned by Init after the terminal has been released
var ErrFinalized = errors.New("terminal already finalized")

// Terminal provides the screen operations the render loop and input service need
type Terminal interface {
	// Init enters raw mode and the alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	// A buffer whose dimensions no longer match the screen is dropped
	Flush(cells []Cell, width, height int)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event, returns nil once finalized
	PollEvent() tcell.Event

	// SetMouse enables/disables mouse event reporting
	SetMouse(enabled bool)
}

// screenTerminal implements Terminal on top of a tcell.Screen
type screenTerminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
	mouse       bool
}

// New creates a Terminal bound to the controlling tty
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return newScreenTerminal(s), nil
}

// NewScreen wraps an existing, uninitialized tcell.Screen
func NewScreen(s tcell.Screen) Terminal {
	return newScreenTerminal(s)
}

func newScreenTerminal(s tcell.Screen) *screenTerminal {
	return &screenTerminal{screen: s}
}

// Init initializes the screen once
func (t *screenTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrFinalized
	}
	if t.initialized {
		return nil
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.EnablePaste()
	t.screen.EnableFocus()
	if t.mouse {
		t.screen.EnableMouse()
	}
	t.screen.Clear()

	t.initialized = true
	return nil
}

// Fini restores the terminal, only the first call after Init has effect
func (t *screenTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return
	}
	t.finalized = true

	if t.initialized {
		t.screen.Fini()
	}
}

// Size returns current screen dimensions, zero before Init and after Fini
func (t *screenTerminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return 0, 0
	}
	return t.screen.Size()
}

// Flush copies cells into the screen and shows them
func (t *screenTerminal) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	if len(cells) < width*height {
		return
	}
	if w, h := t.screen.Size(); w != width || h != height {
		return
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x := range row {
			c := &row[x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, tcellStyle(c))
		}
	}
	t.screen.Show()
}

// Sync forces a full repaint on the next Show
func (t *screenTerminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Sync()
}

// PollEvent is called without holding the lock, it blocks on the screen queue
func (t *screenTerminal) PollEvent() tcell.Event {
	t.mu.Lock()
	ready := t.initialized && !t.finalized
	t.mu.Unlock()

	if !ready {
		return nil
	}
	return t.screen.PollEvent()
}

// SetMouse records the preference and applies it to an active screen
func (t *screenTerminal) SetMouse(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mouse = enabled
	if !t.initialized || t.finalized {
		return
	}
	if enabled {
		t.screen.EnableMouse()
	} else {
		t.screen.DisableMouse()
	}
}
