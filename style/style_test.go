package style

import (
	"testing"

	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/terminal/tui"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    terminal.Color
		wantErr bool
	}{
		{"", terminal.ColorDefault, false},
		{"default", terminal.ColorDefault, false},
		{"#ff0080", terminal.RGB{R: 255, G: 0, B: 128}.Color(), false},
		{"#FFF", terminal.RGB{R: 255, G: 255, B: 255}.Color(), false},
		{" #000000 ", terminal.RGB{}.Color(), false},
		{"red", terminal.ColorDefault, true},
		{"#12345", terminal.ColorDefault, true},
		{"#gg0000", terminal.ColorDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	black := terminal.RGB{}.Color()
	white := terminal.RGB{R: 255, G: 255, B: 255}.Color()

	if got := Blend(black, white, 0); got != black {
		t.Errorf("Expected t=0 to return a, got %v", got)
	}
	if got := Blend(black, white, 1); got != white {
		t.Errorf("Expected t=1 to return b, got %v", got)
	}
	mid := Blend(black, white, 0.5)
	if mid.R == 0 || mid.R == 255 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("Expected a mid gray, got %v", mid)
	}
	if got := Blend(terminal.ColorDefault, white, 0.5); got != white {
		t.Errorf("Expected unset a to yield b, got %v", got)
	}
	if got := Blend(black, terminal.ColorDefault, 0.5); got != black {
		t.Errorf("Expected unset b to yield a, got %v", got)
	}
}

func TestStyleBuilders(t *testing.T) {
	st := Row().WithGap(2).WithPaddingAll(1).WithBorder(tui.LineRounded).WithTitle("t")
	if st.Direction != DirectionRow {
		t.Errorf("Expected row direction, got %v", st.Direction)
	}
	if st.Gap != 2 || st.Padding != All(1) {
		t.Errorf("Expected gap 2 padding 1, got %d %+v", st.Gap, st.Padding)
	}
	if !st.Border.Show || st.Border.Line != tui.LineRounded {
		t.Errorf("Expected rounded border, got %+v", st.Border)
	}
	if st.NoBorder().Border.Show {
		t.Error("Expected NoBorder to hide border")
	}
	if Column().Direction != DirectionColumn || New().Direction != DirectionColumn {
		t.Error("Expected column as default direction")
	}
	if got := New().WithGap(-3).Gap; got != 0 {
		t.Errorf("Expected negative gap clamped to 0, got %d", got)
	}
	if got := New().WithFixed(4).WithWeight(2); got.Fixed != 0 || got.Weight != 2 {
		t.Errorf("Expected weight to clear fixed, got %+v", got.Slot())
	}
}

func TestContentRegion(t *testing.T) {
	cells := make([]terminal.Cell, 20*10)
	r := tui.NewRegion(cells, 20, 0, 0, 20, 10)

	st := New().WithBorder(tui.LineSingle).WithPadding(Inset{Top: 1, Right: 2, Bottom: 0, Left: 3})
	c := st.Content(r)
	if c.X != 4 || c.Y != 2 || c.W != 13 || c.H != 7 {
		t.Errorf("Expected content (4,2,13,7), got (%d,%d,%d,%d)", c.X, c.Y, c.W, c.H)
	}

	tiny := tui.NewRegion(cells, 20, 0, 0, 3, 3)
	if got := New().WithBorder(tui.LineSingle).WithPaddingAll(2).Content(tiny); !got.Empty() {
		t.Errorf("Expected empty content in tiny region, got %dx%d", got.W, got.H)
	}
}
