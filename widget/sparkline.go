package widget

import (
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// Sparkline draws a one-row block graph of recent samples
// With Min and Max both zero the scale follows the visible samples
type Sparkline struct {
	Values   []float64
	Min, Max float64
}

// NewSparkline creates an auto-scaled sparkline
// values is retained; pass a copy if the caller keeps appending to it
func NewSparkline(values []float64) Sparkline {
	return Sparkline{Values: values}
}

// Render implements Widget, drawing on the bottom row of r
func (s Sparkline) Render(r tui.Region, st style.Style) {
	if r.Empty() {
		return
	}
	r.Sparkline(0, r.H-1, r.W, s.Values, s.Min, s.Max, tui.Style{Fg: st.Fg, Bg: st.Bg, Attr: st.Attr})
}

// StyleHint asks for a single row
func (Sparkline) StyleHint() style.Style {
	return style.New().WithFixed(1)
}
