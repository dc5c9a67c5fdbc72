package tui

import "github.com/lixenwraith/ccui/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x > r.W {
		x = r.W
	}
	if y > r.H {
		y = r.H
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Cell sets a single cell with bounds checking
// Unset colors keep the color already in the buffer
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.Color, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return
	}
	c := &r.Cells[idx]
	c.Rune = ch
	c.Fg = fg.Or(c.Fg)
	c.Bg = bg.Or(c.Bg)
	c.Attrs = attr
}

// Fill fills entire region with spaces on the given background
func (r Region) Fill(bg terminal.Color) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.ColorDefault, bg, terminal.AttrNone)
		}
	}
}

// Clear resets region cells to blank default-colored cells
func (r Region) Clear() {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			idx := (r.Y+y)*r.TotalW + r.X + x
			if uint(idx) < uint(len(r.Cells)) {
				r.Cells[idx] = terminal.Cell{Rune: ' '}
			}
		}
	}
}
