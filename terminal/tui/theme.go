package tui

import "github.com/lixenwraith/ccui/terminal"

// Theme defines semantic colors for painted nodes
// Node styles override individual entries
type Theme struct {
	Bg     terminal.Color
	Fg     terminal.Color
	Border terminal.Color
	Title  terminal.Color
	Accent terminal.Color
	Muted  terminal.Color
}

// DefaultTheme keeps the terminal's own fg/bg and colors only chrome
var DefaultTheme = Theme{
	Border: terminal.RGB{R: 60, G: 80, B: 100}.Color(),
	Title:  terminal.RGB{R: 255, G: 255, B: 255}.Color(),
	Accent: terminal.RGB{R: 80, G: 160, B: 220}.Color(),
	Muted:  terminal.RGB{R: 100, G: 100, B: 100}.Color(),
}
