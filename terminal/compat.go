package terminal

import "github.com/gdamore/tcell/v2"

// tcellColor converts an optional color, unset maps to the terminal default
func tcellColor(c Color) tcell.Color {
	if !c.Set {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// colorFromTcell converts a tcell color back, palette colors are resolved to RGB
func colorFromTcell(c tcell.Color) Color {
	if c == tcell.ColorDefault || !c.Valid() {
		return ColorDefault
	}
	r, g, b := c.RGB()
	if r < 0 {
		return ColorDefault
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Color()
}

// tcellStyle builds the tcell style for a cell
func tcellStyle(c *Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg))

	a := c.Attrs
	if a == AttrNone {
		return st
	}
	return st.
		Bold(a&AttrBold != 0).
		Dim(a&AttrDim != 0).
		Italic(a&AttrItalic != 0).
		Underline(a&AttrUnderline != 0).
		Blink(a&AttrBlink != 0).
		Reverse(a&AttrReverse != 0).
		StrikeThrough(a&AttrStrikeThrough != 0)
}

// AttrFromTcell converts a tcell style's attributes to terminal.Attr
func AttrFromTcell(st tcell.Style) Attr {
	_, _, mask := st.Decompose()

	var a Attr
	if mask&tcell.AttrBold != 0 {
		a |= AttrBold
	}
	if mask&tcell.AttrDim != 0 {
		a |= AttrDim
	}
	if mask&tcell.AttrItalic != 0 {
		a |= AttrItalic
	}
	if mask&tcell.AttrBlink != 0 {
		a |= AttrBlink
	}
	if mask&tcell.AttrReverse != 0 {
		a |= AttrReverse
	}
	if mask&tcell.AttrStrikeThrough != 0 {
		a |= AttrStrikeThrough
	}
	if st.GetUnderlineStyle() != tcell.UnderlineStyleNone {
		a |= AttrUnderline
	}
	return a
}
