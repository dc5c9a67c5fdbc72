// Package engine runs the render loop: the single goroutine that owns the node
// store, applies commands in arrival order, paints on a fixed tick and forwards
// terminal input as events.
package engine

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ccui/core"
	"github.com/lixenwraith/ccui/event"
	"github.com/lixenwraith/ccui/node"
	"github.com/lixenwraith/ccui/protocol"
	"github.com/lixenwraith/ccui/status"
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal"
)

// DefaultFrameInterval is the tick period used when Config leaves it zero
const DefaultFrameInterval = time.Second / 60

// paintSmoothing is the EMA weight of the newest paint duration sample
const paintSmoothing = 0.1

// Painter draws the current tree
// Called only from the loop goroutine with a snapshot valid for the call
type Painter interface {
	Paint(s node.Snapshot) error
}

// HitTester is implemented by painters that can map a screen cell to a node
type HitTester interface {
	HitTest(x, y int) (node.ID, bool)
}

// Config wires a loop to its collaborators
// Painter and Input are optional; without a painter the loop emits Tick events instead of painting
type Config struct {
	Commands      *protocol.Mailbox[protocol.Command]
	Events        *protocol.Mailbox[event.Event]
	Painter       Painter
	Input         *terminal.Service
	RootStyle     style.Style
	FrameInterval time.Duration
	Logger        *log.Logger
	Status        *status.Registry
}

// Loop is the render loop
// All store access happens on the loop goroutine; other goroutines talk to it through the mailboxes
type Loop struct {
	commands *protocol.Mailbox[protocol.Command]
	events   *protocol.Mailbox[event.Event]
	painter  Painter
	hit      HitTester
	input    *terminal.Service
	store    *node.Store
	interval time.Duration
	logger   *log.Logger

	state    atomic.Int32
	frame    uint64
	started  atomic.Bool
	stopOnce sync.Once
	done     chan struct{}
	err      error

	// Cached metric pointers
	statusReg     *status.Registry
	statCommands  *atomic.Int64
	statRejected  *atomic.Int64
	statQueries   *atomic.Int64
	statFrames    *atomic.Int64
	statPaintErrs *atomic.Int64
	statEvents    *atomic.Int64
	statCoalesced *atomic.Int64
	statNodes     *atomic.Int64
	statPaintMs   *status.AtomicFloat
	statState     *atomic.Int64
}

// New creates a loop in StateStarting with a store holding only the root container
func New(cfg Config) *Loop {
	if cfg.Commands == nil {
		cfg.Commands = protocol.NewMailbox[protocol.Command]()
	}
	if cfg.Events == nil {
		cfg.Events = protocol.NewMailbox[event.Event]()
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	l := &Loop{
		commands:      cfg.Commands,
		events:        cfg.Events,
		painter:       cfg.Painter,
		input:         cfg.Input,
		store:         node.NewStore(cfg.RootStyle),
		interval:      cfg.FrameInterval,
		logger:        cfg.Logger,
		done:          make(chan struct{}),
		statusReg:     cfg.Status,
		statCommands:  cfg.Status.Ints.Get(status.LoopCommands),
		statRejected:  cfg.Status.Ints.Get(status.LoopRejected),
		statQueries:   cfg.Status.Ints.Get(status.LoopQueries),
		statFrames:    cfg.Status.Ints.Get(status.LoopFrames),
		statPaintErrs: cfg.Status.Ints.Get(status.LoopPaintErrors),
		statEvents:    cfg.Status.Ints.Get(status.LoopEvents),
		statCoalesced: cfg.Status.Ints.Get(status.LoopEventsCoalesced),
		statNodes:     cfg.Status.Ints.Get(status.StoreNodes),
		statPaintMs:   cfg.Status.Floats.Get(status.LoopPaintMs),
		statState:     cfg.Status.Ints.Get(status.LoopState),
	}
	if ht, ok := cfg.Painter.(HitTester); ok {
		l.hit = ht
	}
	l.setState(StateStarting)
	l.statNodes.Store(int64(l.store.Len()))
	return l
}

// Commands returns the inbound command mailbox
func (l *Loop) Commands() *protocol.Mailbox[protocol.Command] {
	return l.commands
}

// Events returns the outbound event mailbox, closed when the loop stops
func (l *Loop) Events() *protocol.Mailbox[event.Event] {
	return l.events
}

// Status returns the metrics registry the loop writes to
func (l *Loop) Status() *status.Registry {
	return l.statusReg
}

// State returns the current lifecycle phase
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Done is closed once the loop has stopped and released the terminal
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Err returns the crash that stopped the loop, nil while running or after a clean stop
func (l *Loop) Err() error {
	select {
	case <-l.done:
		return l.err
	default:
		return nil
	}
}

// Start launches the loop goroutine, later calls are no-ops
func (l *Loop) Start() {
	if l.started.CompareAndSwap(false, true) {
		core.Go(l.run, l.finish)
	}
}

// Stop asks the loop to stop after the commands already queued and waits for it
// Safe to call multiple times and from any goroutine other than the loop
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if err := l.commands.Push(protocol.Stop{}); err != nil {
			// Already closed: the loop wakes on the close itself
			l.commands.Close()
		}
		if !l.started.Load() {
			l.Start()
		}
	})
	<-l.done
}

func (l *Loop) setState(s State) {
	l.state.Store(int32(s))
	l.statState.Store(int64(s))
}

// run is the loop body; it returns on Stop or when the command mailbox closes
func (l *Loop) run() {
	l.setState(StateRunning)
	l.logger.Printf("render loop running, frame interval %v", l.interval)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var input <-chan tcell.Event
	if l.input != nil {
		input = l.input.Events()
	}

	for {
		select {
		case <-l.commands.Ready():
			if l.drain() {
				return
			}

		case now := <-ticker.C:
			// Pending commands land before the frame so it shows the post-burst state
			if l.drain() {
				return
			}
			l.paint(now)

		case ev, ok := <-input:
			if !ok {
				if err := l.input.Err(); err != nil {
					l.logger.Printf("%s input crashed: %v", l.input.Name(), err)
				} else {
					l.logger.Printf("%s input closed", l.input.Name())
				}
				input = nil
				continue
			}
			l.dispatch(ev)
		}
	}
}

// drain applies every pending command in order and reports whether the loop must stop
func (l *Loop) drain() bool {
	items, closed := l.commands.Drain()
	for i, c := range items {
		if l.apply(c) {
			l.discard(items[i+1:])
			return true
		}
	}
	return closed
}

// apply executes one command against the store and reports whether it was Stop
func (l *Loop) apply(c protocol.Command) bool {
	l.statCommands.Add(1)

	var err error
	switch c := c.(type) {
	case protocol.AddWidget:
		err = l.store.Insert(c.Parent, c.ID, node.Widget(c.Widget, c.Style))
	case protocol.AddContainer:
		err = l.store.Insert(c.Parent, c.ID, node.Container(c.Style))
	case protocol.RemoveNode:
		_, err = l.store.Remove(c.ID)
	case protocol.UpdateStyle:
		err = l.store.Update(c.ID, node.SetStyle{Style: c.Style})
	case protocol.UpdateWidget:
		err = l.store.Update(c.ID, node.SetWidget{Widget: c.Widget})
	case protocol.GetNode:
		l.answer(c)
	case protocol.Stop:
		l.logger.Printf("stop requested")
		return true
	}

	if err != nil {
		l.statRejected.Add(1)
		l.logger.Printf("%s %q dropped: %v", protocol.Name(c), c.Target(), err)
		return false
	}
	l.statNodes.Store(int64(l.store.Len()))
	return false
}

func (l *Loop) answer(q protocol.GetNode) {
	l.statQueries.Add(1)

	var r protocol.Reply
	if v, ok := l.store.Lookup(q.ID); ok {
		r.View = v
	} else {
		r.Err = fmt.Errorf("%w: %q", node.ErrNotFound, string(q.ID))
	}

	select {
	case q.Reply <- r:
	default:
		l.logger.Printf("get_node %q: reply channel full", q.ID)
	}
}

// discard drops commands that arrived after Stop, closing query replies unanswered
func (l *Loop) discard(items []protocol.Command) {
	for _, c := range items {
		if q, ok := c.(protocol.GetNode); ok && q.Reply != nil {
			close(q.Reply)
		}
	}
	if len(items) > 0 {
		l.logger.Printf("dropped %d commands after stop", len(items))
	}
}

// paint renders one frame, or emits a bare tick when there is no painter
func (l *Loop) paint(now time.Time) {
	l.frame++
	l.statFrames.Add(1)

	if l.painter == nil {
		l.emit(event.Event{Type: event.TypeTick, When: now, Frame: l.frame})
		return
	}

	start := time.Now()
	err := l.painter.Paint(l.store)
	elapsed := time.Since(start)
	l.statPaintMs.Smooth(float64(elapsed.Microseconds())/1000, paintSmoothing)

	ev := event.Event{Type: event.TypePaintDone, When: now, Frame: l.frame, Elapsed: elapsed}
	if err != nil {
		l.statPaintErrs.Add(1)
		l.logger.Printf("frame %d: %v", l.frame, err)
		ev.Type = event.TypePaintError
		ev.Err = err
	}
	l.emit(ev)
}

// emit queues an event for the document
// Input events are always appended; a frame event replaces a frame event still queued
func (l *Loop) emit(ev event.Event) {
	if ev.Type.IsInput() {
		if err := l.events.Push(ev); err == nil {
			l.statEvents.Add(1)
		}
		return
	}

	coalesced := false
	err := l.events.PushFunc(func(last event.Event, ok bool) (event.Event, bool) {
		coalesced = ok && last.Type.IsFrame()
		return ev, coalesced
	})
	if err != nil {
		return
	}
	if coalesced {
		l.statCoalesced.Add(1)
		return
	}
	l.statEvents.Add(1)
}

// dispatch converts terminal input and queues it, resolving the mouse target first
func (l *Loop) dispatch(raw tcell.Event) {
	ev, ok := event.FromTcell(raw)
	if !ok {
		return
	}
	if ev.Type == event.TypeMouse && l.hit != nil {
		if id, ok := l.hit.HitTest(ev.X, ev.Y); ok {
			ev.Target = id
		}
	}
	l.emit(ev)
}

// dumpTree logs the tree one node per line, indented by depth
func (l *Loop) dumpTree() {
	if l.logger.Writer() == io.Discard {
		return
	}
	var b strings.Builder
	l.store.Walk(func(v node.View, depth int) bool {
		fmt.Fprintf(&b, "\n%s%s (%s)", strings.Repeat("  ", depth), v.ID, v.Kind)
		return true
	})
	l.logger.Printf("tree at stop, %d nodes:%s", l.store.Len(), b.String())
}

// finish tears down after run returns or panics
// The command mailbox is closed before the final drain so no send can slip past it
func (l *Loop) finish(crash *core.CrashError) {
	if crash != nil {
		l.err = crash
		l.logger.Printf("render loop crashed: %v\n%s", crash, crash.Stack)
	}

	l.commands.Close()
	items, _ := l.commands.Drain()
	l.discard(items)

	if l.input != nil {
		l.input.Stop()
	}

	l.events.Close()
	l.dumpTree()
	l.setState(StateStopped)
	l.logger.Printf("render loop stopped after %d frames", l.frame)
	close(l.done)
}
