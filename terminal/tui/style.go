package tui

import (
	"github.com/lixenwraith/ccui/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.Color
	Bg   terminal.Color
	Attr terminal.Attr
}
