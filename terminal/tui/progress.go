package tui

import (
	"strconv"

	"github.com/lixenwraith/ccui/terminal"
)

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// Progress draws horizontal progress bar (0.0-1.0)
// empty colors the unfilled part, unset uses fg
func (r Region) Progress(x, y, w int, pct float64, fg, empty, bg terminal.Color) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	pct = clampPct(pct)
	empty = empty.Or(fg)

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		if x+i >= r.W {
			break
		}
		switch {
		case i < filled:
			r.Cell(x+i, y, progressFull, fg, bg, terminal.AttrNone)
		case i == filled && remainder >= 0.5:
			r.Cell(x+i, y, progressHalf, fg, bg, terminal.AttrNone)
		default:
			r.Cell(x+i, y, progressEmpty, empty, bg, terminal.AttrNone)
		}
	}
}

// Gauge draws a progress bar followed by a right-aligned percentage label
// Format: ████░░░░  75%
func (r Region) Gauge(x, y, w int, pct float64, fg, empty, bg terminal.Color) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	pct = clampPct(pct)

	const labelW = 5 // " 100%"
	if w < labelW+1 {
		r.Progress(x, y, w, pct, fg, empty, bg)
		return
	}

	barW := w - labelW
	r.Progress(x, y, barW, pct, fg, empty, bg)
	label := PadLeft(strconv.Itoa(int(pct*100))+"%", labelW)
	r.Text(x+barW, y, label, fg, bg, terminal.AttrNone)
}

func clampPct(pct float64) float64 {
	if pct < 0 || pct != pct {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
