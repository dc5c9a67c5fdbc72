// Package widget defines the payload carried by widget nodes and the built-in widgets.
//
// Widgets are values owned by the render loop once sent; a widget must not be
// mutated by the sender afterwards. Replace it with UpdateWidget instead.
package widget

import (
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// Widget draws itself into the region the painter assigned to its node
// The region is already inside the node's border and padding, st carries resolved colors
type Widget interface {
	Render(r tui.Region, st style.Style)
}

// StyleHinter is implemented by widgets that suggest a node style when added
type StyleHinter interface {
	StyleHint() style.Style
}

// HintFor returns the widget's suggested style, or the zero style
func HintFor(w Widget) style.Style {
	if h, ok := w.(StyleHinter); ok {
		return h.StyleHint()
	}
	return style.New()
}

// Func adapts a render function to Widget
type Func func(r tui.Region, st style.Style)

// Render calls f
func (f Func) Render(r tui.Region, st style.Style) {
	f(r, st)
}
