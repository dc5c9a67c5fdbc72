package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// Align is horizontal text alignment
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text displays a block of text
// Escape sequences in Content are stripped; styling comes from the node style
type Text struct {
	Content string
	Align   Align
	Wrap    bool
	Bold    bool
}

// NewText creates a left-aligned, non-wrapping text widget
func NewText(content string) Text {
	return Text{Content: content}
}

// WithAlign returns a copy with the given alignment
func (t Text) WithAlign(a Align) Text {
	t.Align = a
	return t
}

// WithWrap returns a copy that wraps at word boundaries
func (t Text) WithWrap(wrap bool) Text {
	t.Wrap = wrap
	return t
}

// WithBold returns a copy rendered bold
func (t Text) WithBold(bold bool) Text {
	t.Bold = bold
	return t
}

// Lines returns the display lines for width w
func (t Text) Lines(w int) []string {
	if w <= 0 {
		return nil
	}
	content := ansi.Strip(t.Content)
	if t.Wrap {
		return tui.WrapText(content, w)
	}
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = tui.Truncate(l, w)
	}
	return lines
}

// Render implements Widget
func (t Text) Render(r tui.Region, st style.Style) {
	if r.Empty() {
		return
	}
	attr := st.Attr
	if t.Bold {
		attr |= terminal.AttrBold
	}

	for y, line := range t.Lines(r.W) {
		if y >= r.H {
			break
		}
		switch t.Align {
		case AlignCenter:
			r.TextCenter(y, line, st.Fg, st.Bg, attr)
		case AlignRight:
			r.TextRight(y, line, st.Fg, st.Bg, attr)
		default:
			r.Text(0, y, line, st.Fg, st.Bg, attr)
		}
	}
}

// StyleHint implements StyleHinter
func (t Text) StyleHint() style.Style {
	return style.Column()
}
