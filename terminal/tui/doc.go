// Package tui provides immediate-mode drawing primitives over a terminal cell buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
// Text measurement is grapheme and display-width aware.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(bg)
//
//	cols := tui.SplitH(root, 1, tui.Slot{Fixed: 20}, tui.Slot{Weight: 1})
//	content := cols[0].Card("TITLE", tui.LineRounded, border, title)
//	content.Text(0, 0, "Hello", fg, terminal.ColorDefault, 0)
//
//	term.Flush(cells, w, h)
package tui
