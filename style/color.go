package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ccui/terminal"
)

// ParseColor parses "#rgb" or "#rrggbb"
// An empty string or "default" yields the unset color
func ParseColor(s string) (terminal.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "default") {
		return terminal.ColorDefault, nil
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return terminal.ColorDefault, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustColor is ParseColor for constants, it panics on malformed input
func MustColor(s string) terminal.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend mixes a toward b by t (0..1) in Lab space
// If either color is unset the other is returned
func Blend(a, b terminal.Color, t float64) terminal.Color {
	if !a.Set {
		return b
	}
	if !b.Set {
		return a
	}
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t).Clamped())
}

func toColorful(c terminal.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) terminal.Color {
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}.Color()
}
