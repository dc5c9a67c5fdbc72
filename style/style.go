// Package style describes how a node is laid out and decorated by the painter.
package style

import (
	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// Direction is the axis along which a container lays out its children
type Direction uint8

const (
	DirectionColumn Direction = iota // top to bottom
	DirectionRow                     // left to right
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionRow:
		return "row"
	case DirectionColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Inset is a per-side cell offset
type Inset struct {
	Top, Right, Bottom, Left int
}

// All returns an inset of n on every side
func All(n int) Inset {
	return Inset{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns Left + Right
func (i Inset) Horizontal() int {
	return i.Left + i.Right
}

// Vertical returns Top + Bottom
func (i Inset) Vertical() int {
	return i.Top + i.Bottom
}

// Border decorates a node's edge
// Color unset uses the theme border color
type Border struct {
	Show  bool
	Line  tui.LineType
	Color terminal.Color
}

// Style is shared by both node kinds
// Containers use Direction and Gap to place children; every node honors
// Border, Padding, colors and its own Weight/Fixed size along the parent's axis
type Style struct {
	Direction Direction
	Gap       int
	Padding   Inset
	Border    Border
	Title     string

	Fg   terminal.Color
	Bg   terminal.Color
	Attr terminal.Attr

	// Weight shares leftover space with siblings (0 counts as 1)
	Weight int
	// Fixed > 0 requests an exact size along the parent's axis
	Fixed int
}

// New returns the zero style: column direction, no border, no padding
func New() Style {
	return Style{}
}

// Row returns a style laying children out left to right
func Row() Style {
	return Style{Direction: DirectionRow}
}

// Column returns a style laying children out top to bottom
func Column() Style {
	return Style{Direction: DirectionColumn}
}

// WithDirection sets the layout axis
func (s Style) WithDirection(d Direction) Style {
	s.Direction = d
	return s
}

// WithGap sets the spacing between children
func (s Style) WithGap(n int) Style {
	s.Gap = max(n, 0)
	return s
}

// WithPadding sets per-side padding
func (s Style) WithPadding(p Inset) Style {
	s.Padding = p
	return s
}

// WithPaddingAll sets the same padding on every side
func (s Style) WithPaddingAll(n int) Style {
	s.Padding = All(max(n, 0))
	return s
}

// WithBorder shows a border of the given line type
func (s Style) WithBorder(line tui.LineType) Style {
	s.Border = Border{Show: true, Line: line, Color: s.Border.Color}
	return s
}

// WithBorderColor sets the border color
func (s Style) WithBorderColor(c terminal.Color) Style {
	s.Border.Color = c
	return s
}

// NoBorder hides the border
func (s Style) NoBorder() Style {
	s.Border = Border{}
	return s
}

// WithTitle sets the title drawn on the top border
func (s Style) WithTitle(title string) Style {
	s.Title = title
	return s
}

// WithFg sets the foreground color
func (s Style) WithFg(c terminal.Color) Style {
	s.Fg = c
	return s
}

// WithBg sets the background color
func (s Style) WithBg(c terminal.Color) Style {
	s.Bg = c
	return s
}

// WithAttr sets text attributes
func (s Style) WithAttr(a terminal.Attr) Style {
	s.Attr = a
	return s
}

// WithWeight sets the share of leftover space
func (s Style) WithWeight(w int) Style {
	s.Weight = max(w, 0)
	s.Fixed = 0
	return s
}

// WithFixed requests an exact size along the parent's axis
func (s Style) WithFixed(n int) Style {
	s.Fixed = max(n, 0)
	return s
}

// Slot returns the layout request this style makes to its parent
func (s Style) Slot() tui.Slot {
	return tui.Slot{Fixed: s.Fixed, Weight: s.Weight}
}

// Shrink returns r reduced by padding
func (s Style) Shrink(r tui.Region) tui.Region {
	p := s.Padding
	return r.Sub(p.Left, p.Top, r.W-p.Horizontal(), r.H-p.Vertical())
}

// ShrinkBorder returns r reduced by one cell on each side when the border is shown
func (s Style) ShrinkBorder(r tui.Region) tui.Region {
	if !s.Border.Show {
		return r
	}
	return r.Inset(1)
}

// Content returns the area inside border and padding
func (s Style) Content(r tui.Region) tui.Region {
	return s.Shrink(s.ShrinkBorder(r))
}
