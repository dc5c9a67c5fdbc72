package tui

import (
	"github.com/lixenwraith/ccui/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

var lineNames = [...]string{
	LineSingle:  "single",
	LineDouble:  "double",
	LineRounded: "rounded",
	LineHeavy:   "heavy",
	LineNone:    "none",
}

// String returns the lowercase line name
func (l LineType) String() string {
	if int(l) < len(lineNames) {
		return lineNames[l]
	}
	return "unknown"
}

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// --- Box Rendering ---

// Box draws border around region edge, background is left untouched
func (r Region) Box(line LineType, fg terminal.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	bg := terminal.ColorDefault

	r.Cell(0, 0, chars[boxTL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, bg, terminal.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, terminal.AttrNone)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, bg, terminal.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, bg, terminal.AttrNone)
	}

	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, bg, terminal.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, bg, terminal.AttrNone)
	}
}

// --- Card rendering ---

// Card draws border with a title on the top edge and returns the inner content region
// An empty title draws a plain box
func (r Region) Card(title string, line LineType, fg, titleFg terminal.Color) Region {
	r.Box(line, fg)

	if title != "" && r.W > 4 {
		maxTitleLen := r.W - 4
		displayTitle := Truncate(title, maxTitleLen)
		titleX := (r.W - StringWidth(displayTitle) - 2) / 2
		r.Text(titleX, 0, " "+displayTitle+" ", titleFg.Or(fg), terminal.ColorDefault, terminal.AttrBold)
	}

	return r.Inset(1)
}
