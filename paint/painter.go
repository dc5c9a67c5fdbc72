// Package paint renders a node tree into a terminal cell buffer.
//
// Layout is a single pass: each container splits its content area among its
// children along its direction, honoring gap, fixed sizes and weights. Every
// node may draw a background, a border with a title and padding before its
// content. Colors not set on a node are inherited from its parent.
package paint

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ccui/core"
	"github.com/lixenwraith/ccui/node"
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// WidgetError reports a widget that panicked while rendering
type WidgetError struct {
	ID    node.ID
	Crash *core.CrashError
}

// Error implements error
func (e *WidgetError) Error() string {
	return fmt.Sprintf("widget %q: %v", e.ID, e.Crash)
}

// Unwrap returns the crash
func (e *WidgetError) Unwrap() error {
	return e.Crash
}

// Rect is the area a node occupied at the last paint, in screen cells
type Rect struct {
	ID         node.ID
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Painter draws a snapshot onto a terminal
// Not safe for concurrent use: the render loop is its only caller
type Painter struct {
	term  terminal.Terminal
	theme tui.Theme

	cells []terminal.Cell
	w, h  int
	rects []Rect
}

// New creates a painter for term
func New(term terminal.Terminal, theme tui.Theme) *Painter {
	return &Painter{
		term:  term,
		theme: theme,
	}
}

// Paint lays out and draws the whole tree, then flushes it
// Widget panics are recovered; the frame is still flushed and the errors returned
func (p *Painter) Paint(s node.Snapshot) error {
	w, h := p.term.Size()
	if w <= 0 || h <= 0 {
		p.rects = p.rects[:0]
		return nil
	}

	resized := w != p.w || h != p.h
	if resized || len(p.cells) != w*h {
		p.cells = make([]terminal.Cell, w*h)
		p.w, p.h = w, h
	}

	err := p.Render(s, tui.NewRegion(p.cells, w, 0, 0, w, h))
	p.term.Flush(p.cells, w, h)
	if resized {
		p.term.Sync()
	}
	return err
}

// Render draws the tree into r without flushing
func (p *Painter) Render(s node.Snapshot, r tui.Region) error {
	r.Clear()
	r.Fill(p.theme.Bg)
	p.rects = p.rects[:0]

	base := style.Style{Fg: p.theme.Fg, Bg: p.theme.Bg}
	var errs []error
	p.paintNode(s, s.Root(), r, base, &errs)
	return errors.Join(errs...)
}

// Rects returns the node areas recorded by the last paint in paint order
func (p *Painter) Rects() []Rect {
	out := make([]Rect, len(p.rects))
	copy(out, p.rects)
	return out
}

// HitTest returns the deepest node whose area contains (x, y) at the last paint
func (p *Painter) HitTest(x, y int) (node.ID, bool) {
	for i := len(p.rects) - 1; i >= 0; i-- {
		if p.rects[i].Contains(x, y) {
			return p.rects[i].ID, true
		}
	}
	return "", false
}

func (p *Painter) paintNode(s node.Snapshot, id node.ID, r tui.Region, parent style.Style, errs *[]error) {
	v, ok := s.Lookup(id)
	if !ok {
		*errs = append(*errs, fmt.Errorf("paint: %w: %q", node.ErrNotFound, string(id)))
		return
	}
	if r.Empty() {
		return
	}
	p.rects = append(p.rects, Rect{ID: id, X: r.X, Y: r.Y, W: r.W, H: r.H})

	st := v.Style
	st.Fg = st.Fg.Or(parent.Fg)
	st.Bg = st.Bg.Or(parent.Bg)

	if v.Style.Bg.Set {
		r.Fill(st.Bg)
	}
	if st.Border.Show {
		r.Card(st.Title, st.Border.Line, st.Border.Color.Or(p.theme.Border), p.theme.Title)
	}
	content := st.Content(r)

	switch v.Kind {
	case node.KindWidget:
		if err := p.renderWidget(v, content, st); err != nil {
			*errs = append(*errs, err)
		}
	case node.KindContainer:
		p.paintChildren(s, v, content, st, errs)
	}
}

func (p *Painter) paintChildren(s node.Snapshot, v node.View, content tui.Region, st style.Style, errs *[]error) {
	if len(v.Children) == 0 || content.Empty() {
		return
	}

	slots := make([]tui.Slot, len(v.Children))
	for i, c := range v.Children {
		if cv, ok := s.Lookup(c); ok {
			slots[i] = cv.Style.Slot()
		}
	}

	var areas []tui.Region
	switch st.Direction {
	case style.DirectionRow:
		areas = tui.SplitH(content, st.Gap, slots...)
	default:
		areas = tui.SplitV(content, st.Gap, slots...)
	}

	// Children inherit colors but not layout or decoration
	inherit := style.Style{Fg: st.Fg, Bg: st.Bg}
	for i, c := range v.Children {
		p.paintNode(s, c, areas[i], inherit, errs)
	}
}

func (p *Painter) renderWidget(v node.View, r tui.Region, st style.Style) (err error) {
	if v.Widget == nil || r.Empty() {
		return nil
	}
	defer func() {
		if crash := core.Recover(recover()); crash != nil {
			err = &WidgetError{ID: v.ID, Crash: crash}
		}
	}()
	v.Widget.Render(r, st)
	return nil
}
