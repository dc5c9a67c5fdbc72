package tui

import (
	"slices"

	"github.com/lixenwraith/ccui/terminal"
)

// SparklineChars provides 8-level vertical resolution
var SparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the newest values that fit in width as block characters on row y
// lo and hi bound the scale; both zero auto-scales to the visible values
// Columns past the data are padded with the lowest block, dimmed
func (r Region) Sparkline(x, y, width int, values []float64, lo, hi float64, st Style) {
	if y < 0 || y >= r.H || x < 0 || x >= r.W || width <= 0 {
		return
	}
	width = min(width, r.W-x)

	if len(values) > width {
		values = values[len(values)-width:]
	}
	if lo == 0 && hi == 0 && len(values) > 0 {
		lo, hi = slices.Min(values), slices.Max(values)
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	top := float64(len(SparklineChars)) - 0.01
	for i, v := range values {
		idx := int(clampPct((v-lo)/span) * top)
		r.Cell(x+i, y, SparklineChars[idx], st.Fg, st.Bg, st.Attr)
	}
	for i := len(values); i < width; i++ {
		r.Cell(x+i, y, SparklineChars[0], st.Fg, st.Bg, st.Attr|terminal.AttrDim)
	}
}
