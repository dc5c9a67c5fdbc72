package main

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ccui"
	"github.com/lixenwraith/ccui/event"
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal/tui"
	"github.com/lixenwraith/ccui/widget"
)

const (
	// framesPerStep is how many frames pass between progress and stats updates
	framesPerStep = 6
	maxSamples    = 120
)

var (
	colorMuted  = style.MustColor("#808080")
	colorAccent = style.MustColor("#50a0dc")
)

// demoUI keeps the handles the event loop updates
type demoUI struct {
	doc      *ccui.Document
	progress ccui.WidgetHandle
	graph    ccui.WidgetHandle
	stats    ccui.WidgetHandle
	status   ccui.WidgetHandle

	frames  uint64
	value   float64
	samples []float64
}

func buildTree(doc *ccui.Document) (*demoUI, error) {
	title, err := doc.AddWidget("title", widget.NewText("ccui demo").WithAlign(widget.AlignCenter).WithBold(true))
	if err != nil {
		return nil, err
	}
	if err := title.SetStyle(style.New().WithFixed(1).WithFg(colorAccent)); err != nil {
		return nil, err
	}

	row, err := doc.AddContainer("row", style.Row().WithGap(1))
	if err != nil {
		return nil, err
	}

	panel := style.Column().WithBorder(tui.LineRounded).WithPadding(style.Inset{Left: 1, Right: 1})
	left, err := row.AddContainer("left", panel.WithTitle("Left"))
	if err != nil {
		return nil, err
	}
	intro := widget.NewText("Every node has an id. Handles send commands; the render loop applies them in order.").WithWrap(true)
	if _, err := left.AddWidget("left.text", intro); err != nil {
		return nil, err
	}
	stats, err := left.AddWidget("left.stats", widget.NewKeyValue())
	if err != nil {
		return nil, err
	}
	if err := stats.SetStyle(style.New().WithFixed(4)); err != nil {
		return nil, err
	}

	right, err := row.AddContainer("right", panel.WithTitle("Right"))
	if err != nil {
		return nil, err
	}
	progress, err := right.AddWidget("right.progress", widget.NewProgress("loading", 0))
	if err != nil {
		return nil, err
	}
	graph, err := right.AddWidget("right.graph", widget.NewSparkline(nil))
	if err != nil {
		return nil, err
	}

	status, err := doc.AddWidget("status", widget.NewText("q: quit, click: hit test"))
	if err != nil {
		return nil, err
	}
	if err := status.SetStyle(style.New().WithFixed(1).WithFg(colorMuted)); err != nil {
		return nil, err
	}

	return &demoUI{doc: doc, progress: progress, graph: graph, stats: stats, status: status}, nil
}

// handle reacts to one event and reports whether the demo should quit
func (u *demoUI) handle(ev event.Event) bool {
	switch ev.Type {
	case event.TypeKey:
		return isQuit(ev.Key, ev.Rune)

	case event.TypeMouse:
		if ev.Target == "" {
			break
		}
		switch ev.Mouse {
		case event.MousePress:
			if ev.Buttons&tcell.Button1 != 0 {
				u.setStatus(fmt.Sprintf("clicked %s at %d,%d", ev.Target, ev.X, ev.Y))
			}
		case event.MouseScrollUp, event.MouseScrollDown:
			u.setStatus(fmt.Sprintf("%s over %s", ev.Mouse, ev.Target))
		}

	case event.TypePaintDone, event.TypeTick:
		u.frames++
		u.record(ev.Elapsed)
		if u.frames%framesPerStep == 0 {
			u.step()
			u.showStats()
		}

	case event.TypePaintError:
		u.setStatus(fmt.Sprintf("paint error: %v", ev.Err))
	}
	return false
}

func (u *demoUI) step() {
	u.value += 0.01
	if u.value > 1 {
		u.value = 0
	}
	_ = u.progress.Update(widget.NewProgress("loading", u.value))
}

// record keeps the latest paint durations and redraws the graph
func (u *demoUI) record(elapsed time.Duration) {
	u.samples = append(u.samples, float64(elapsed.Microseconds()))
	if len(u.samples) > maxSamples {
		u.samples = u.samples[len(u.samples)-maxSamples:]
	}
	_ = u.graph.Update(widget.NewSparkline(slices.Clone(u.samples)))
}

func (u *demoUI) showStats() {
	st := u.doc.Stats()
	_ = u.stats.Update(widget.NewKeyValue(
		widget.Pair{Key: "nodes", Value: strconv.FormatInt(st.Nodes, 10)},
		widget.Pair{Key: "frames", Value: strconv.FormatInt(st.Frames, 10)},
		widget.Pair{Key: "paint", Value: fmt.Sprintf("%.2fms", st.PaintMs)},
		widget.Pair{Key: "dropped", Value: strconv.FormatInt(st.Rejected, 10)},
	))
}

func (u *demoUI) setStatus(s string) {
	_ = u.status.Update(widget.NewText(s))
}
