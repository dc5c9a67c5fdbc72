package widget

import (
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal/tui"
)

// Pair is one row of a KeyValue widget
type Pair struct {
	Key   string
	Value string
}

// KeyValue lists pairs one per row with keys right-aligned in a shared column
type KeyValue struct {
	Pairs []Pair
	Sep   rune
}

// NewKeyValue creates a list separated by ':'
func NewKeyValue(pairs ...Pair) KeyValue {
	return KeyValue{Pairs: pairs, Sep: ':'}
}

// Render implements Widget; rows past the region height are dropped
func (kv KeyValue) Render(r tui.Region, st style.Style) {
	if r.Empty() {
		return
	}
	keyW := 0
	for _, p := range kv.Pairs {
		keyW = max(keyW, tui.StringWidth(p.Key))
	}
	sep := kv.Sep
	if sep == 0 {
		sep = ':'
	}

	keyStyle := tui.Style{Fg: style.Blend(st.Fg, st.Bg, 0.4), Bg: st.Bg}
	valStyle := tui.Style{Fg: st.Fg, Bg: st.Bg, Attr: st.Attr}
	for i, p := range kv.Pairs {
		if i >= r.H {
			break
		}
		r.KeyValue(i, p.Key, p.Value, keyW, keyStyle, valStyle, sep)
	}
}
