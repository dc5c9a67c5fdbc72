package tui

import (
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/ccui/terminal"
)

// Text renders text at position, truncates at region edge
// Wide graphemes occupy two cells; the trailing cell is written with rune 0
func (r Region) Text(x, y int, s string, fg, bg terminal.Color, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+col+w > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, runes[0], fg, bg, attr)
			for i := 1; i < w; i++ {
				r.Cell(x+col+i, y, 0, fg, bg, attr)
			}
		}
		col += w
	}
	return col
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.Color, attr terminal.Attr) {
	x := r.W - StringWidth(s)
	r.Text(x, y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.Color, attr terminal.Attr) {
	x := (r.W - StringWidth(s)) / 2
	r.Text(x, y, s, fg, bg, attr)
}
