package tui

import (
	"github.com/lixenwraith/ccui/terminal"
)

// keyValueColumns splits width w into key and value columns around a one-cell separator
// The key gets what it needs up to 40%; the value keeps at least 30%
func keyValueColumns(w, keyLen int) (keyW, valW int) {
	maxKeyW := (w * 2) / 5
	minValW := (w * 3) / 10

	keyW = max(min(keyLen, maxKeyW), 1)
	valW = w - keyW - 1
	if valW < minValW && w > minValW+2 {
		valW = minValW
		keyW = w - valW - 1
		if keyW < 1 {
			keyW = 1
			valW = w - 2
		}
	}
	return keyW, max(valW, 1)
}

// KeyValue renders a right-aligned key, a dimmed separator and a left-aligned value on row y
// keyW fixes the key column; zero sizes it from key
func (r Region) KeyValue(y int, key, value string, keyW int, keyStyle, valStyle Style, sep rune) {
	if y < 0 || y >= r.H || r.W < 3 {
		return
	}
	if keyW <= 0 {
		keyW = StringWidth(key)
	}
	keyW, valW := keyValueColumns(r.W, keyW)

	r.Text(0, y, PadLeft(Truncate(key, keyW), keyW), keyStyle.Fg, keyStyle.Bg, keyStyle.Attr)
	r.Cell(keyW, y, sep, keyStyle.Fg, keyStyle.Bg, terminal.AttrDim)
	r.Text(keyW+1, y, Truncate(value, valW), valStyle.Fg, valStyle.Bg, valStyle.Attr)
}
