package terminal

import "fmt"

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Color returns c as a set color
func (c RGB) Color() Color {
	return Color{RGB: c, Set: true}
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color is an optional RGB color
// The zero value is unset: cells keep the color already under them, the screen uses its default
type Color struct {
	RGB
	Set bool
}

// ColorDefault is the unset color
var ColorDefault = Color{}

// Or returns c when set, otherwise fallback
func (c Color) Or(fallback Color) Color {
	if c.Set {
		return c
	}
	return fallback
}

// String returns the hex form or "default"
func (c Color) String() string {
	if !c.Set {
		return "default"
	}
	return c.Hex()
}
