package widget

import (
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// Progress displays a horizontal gauge with an optional label
// Value is clamped to 0..1
type Progress struct {
	Value float64
	Label string
}

// NewProgress creates a progress widget
func NewProgress(label string, value float64) Progress {
	return Progress{Value: value, Label: label}
}

// Render implements Widget
// With room for two rows the label sits above the bar, otherwise it prefixes it
func (p Progress) Render(r tui.Region, st style.Style) {
	if r.Empty() {
		return
	}
	empty := style.Blend(st.Fg, st.Bg, 0.6)

	barRow, barX := 0, 0
	if p.Label != "" {
		label := tui.Truncate(p.Label, r.W)
		r.Text(0, 0, label, st.Fg, st.Bg, st.Attr)
		if r.H >= 2 {
			barRow = 1
		} else {
			barX = tui.StringWidth(label) + 1
		}
	}
	if barX >= r.W {
		return
	}
	r.Gauge(barX, barRow, r.W-barX, p.Value, st.Fg, empty, st.Bg)
}
