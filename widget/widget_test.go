package widget

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/terminal/tui"
)

func render(w Widget, width, height int, st style.Style) ([]string, tui.Region) {
	cells := make([]terminal.Cell, width*height)
	r := tui.NewRegion(cells, width, 0, 0, width, height)
	r.Clear()
	w.Render(r, st)

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if c := cells[y*width+x]; c.Rune != 0 {
				b.WriteRune(c.Rune)
			}
		}
		rows[y] = b.String()
	}
	return rows, r
}

func TestTextAlign(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		want  string
	}{
		{"left", AlignLeft, "hi    "},
		{"center", AlignCenter, "  hi  "},
		{"right", AlignRight, "    hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, _ := render(NewText("hi").WithAlign(tt.align), 6, 1, style.New())
			if rows[0] != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, rows[0])
			}
		})
	}
}

func TestTextTruncatesAndWraps(t *testing.T) {
	rows, _ := render(NewText("hello world"), 8, 2, style.New())
	want := []string{"hello w…", "        "}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Truncated rows mismatch (-want +got):\n%s", diff)
	}

	rows, _ = render(NewText("hello world").WithWrap(true), 8, 2, style.New())
	want = []string{"hello   ", "world   "}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Wrapped rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTextStripsEscapes(t *testing.T) {
	rows, _ := render(NewText("\x1b[31mred\x1b[0m"), 5, 1, style.New())
	if rows[0] != "red  " {
		t.Errorf("Expected escapes stripped, got %q", rows[0])
	}
}

func TestTextBoldAndColor(t *testing.T) {
	fg := terminal.RGB{R: 10, G: 20, B: 30}.Color()
	_, r := render(NewText("x").WithBold(true), 2, 1, style.New().WithFg(fg))
	c := r.Cells[r.Y*r.TotalW+r.X]
	if c.Attrs&terminal.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}
	if c.Fg != fg {
		t.Errorf("Expected fg %v, got %v", fg, c.Fg)
	}
}

func TestProgressLayout(t *testing.T) {
	rows, _ := render(NewProgress("load", 0.5), 10, 2, style.New())
	want := []string{"load      ", "██▌░░  50%"}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Two-row progress mismatch (-want +got):\n%s", diff)
	}

	rows, _ = render(NewProgress("ab", 1), 10, 1, style.New())
	if rows[0] != "ab ██ 100%" {
		t.Errorf("Expected single-row progress %q, got %q", "ab ██ 100%", rows[0])
	}
}

func TestHintFor(t *testing.T) {
	if got := HintFor(NewText("x")); got.Direction != style.DirectionColumn {
		t.Errorf("Expected column hint, got %v", got.Direction)
	}
	if got := HintFor(NewProgress("", 0)); got != style.New() {
		t.Errorf("Expected zero style for widget without hint, got %+v", got)
	}
	called := false
	Func(func(tui.Region, style.Style) { called = true }).Render(tui.Region{}, style.New())
	if !called {
		t.Error("Expected Func to be invoked")
	}
}

func TestSparkline(t *testing.T) {
	rows, _ := render(NewSparkline([]float64{0, 1, 2, 3}), 5, 2, style.New())
	want := []string{"     ", "▁▃▆█▁"}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Sparkline mismatch (-want +got):\n%s", diff)
	}

	rows, _ = render(Sparkline{Values: []float64{5, 10}, Min: 0, Max: 10}, 2, 1, style.New())
	if rows[0] != "▄█" {
		t.Errorf("Expected fixed-scale %q, got %q", "▄█", rows[0])
	}
	if got := HintFor(Sparkline{}); got.Fixed != 1 {
		t.Errorf("Expected one-row hint, got %+v", got)
	}
}

func TestKeyValue(t *testing.T) {
	kv := NewKeyValue(Pair{"fps", "60"}, Pair{"n", "3"}, Pair{"hidden", "x"})
	rows, _ := render(kv, 12, 2, style.New())
	want := []string{" fps:60     ", "   n:3      "}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("KeyValue mismatch (-want +got):\n%s", diff)
	}
}
