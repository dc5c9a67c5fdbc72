package ccui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/lixenwraith/ccui/config"
	"github.com/lixenwraith/ccui/core"
	"github.com/lixenwraith/ccui/engine"
	"github.com/lixenwraith/ccui/event"
	"github.com/lixenwraith/ccui/node"
	"github.com/lixenwraith/ccui/paint"
	"github.com/lixenwraith/ccui/protocol"
	"github.com/lixenwraith/ccui/status"
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/terminal"
	"github.com/lixenwraith/ccui/widget"
)

// Document is the front door to a running UI tree
// Safe for concurrent use; every method except Close returns without waiting
// for the render loop unless it is a query
type Document struct {
	loop     *engine.Loop
	commands *protocol.Mailbox[protocol.Command]
	status   *status.Registry

	events   chan event.Event
	teardown *teardown

	closeOnce sync.Once
	closeErr  error
	cleanup   runtime.Cleanup
}

// teardown releases everything a document owns
// It holds no reference to the Document so it can serve as the drop cleanup
type teardown struct {
	once        sync.Once
	commands    *protocol.Mailbox[protocol.Command]
	closing     chan struct{}
	loopDone    <-chan struct{}
	forwardDone chan struct{}
	logCloser   io.Closer
	released    chan struct{}
}

// release stops the loop and the forwarder without blocking
// released is closed once both have exited and the log is closed
func (t *teardown) release() {
	t.once.Do(func() {
		close(t.closing)
		stopCommands(t.commands)
		core.Go(func() {
			<-t.loopDone
			<-t.forwardDone
			t.logCloser.Close()
		}, func(*core.CrashError) { close(t.released) })
	})
}

// Run acquires the terminal, starts the render loop and returns immediately
// The terminal is in alternate screen and raw mode when Run returns without error
func Run(opts ...Option) (*Document, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, fmt.Errorf("ccui: %w", err)
		}
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("ccui: %w", err)
	}

	theme, err := s.cfg.Theme.Resolve()
	if err != nil {
		return nil, fmt.Errorf("ccui: %w", err)
	}

	logger := s.logger
	var logCloser io.Closer = nopCloser{}
	if logger == nil {
		logger, logCloser, err = config.SetupLogger(s.cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("ccui: %w", err)
		}
	}

	painter := s.painter
	var input *terminal.Service
	if !s.headless {
		term := s.term
		if term == nil {
			if term, err = terminal.New(); err != nil {
				logCloser.Close()
				return nil, fmt.Errorf("ccui: %w", err)
			}
		}
		term.SetMouse(s.cfg.Mouse)
		if err := term.Init(); err != nil {
			logCloser.Close()
			return nil, fmt.Errorf("ccui: terminal init: %w", err)
		}
		input = terminal.NewService(term)
		input.Start()
		if painter == nil {
			painter = paint.New(term, theme)
		}
	}

	if s.status == nil {
		s.status = status.NewRegistry()
	}
	loop := engine.New(engine.Config{
		Painter:       painter,
		Input:         input,
		RootStyle:     s.rootStyle,
		FrameInterval: s.cfg.FrameInterval(),
		Logger:        logger,
		Status:        s.status,
	})

	td := &teardown{
		commands:    loop.Commands(),
		closing:     make(chan struct{}),
		loopDone:    loop.Done(),
		forwardDone: make(chan struct{}),
		logCloser:   logCloser,
		released:    make(chan struct{}),
	}
	d := &Document{
		loop:     loop,
		commands: td.commands,
		status:   s.status,
		events:   make(chan event.Event),
		teardown: td,
	}

	// The forwarder must not reference d, or d never becomes unreachable
	src, out := loop.Events(), d.events
	core.Go(func() { forwardEvents(src, out, td.closing) }, func(*core.CrashError) { close(td.forwardDone) })

	// A document dropped without Close still stops its loop, restores the terminal and closes the log
	d.cleanup = runtime.AddCleanup(d, (*teardown).release, td)

	loop.Start()
	logger.Printf("document started, headless=%t", s.headless)
	return d, nil
}

func stopCommands(m *protocol.Mailbox[protocol.Command]) {
	_ = m.Push(protocol.Stop{})
	m.Close()
}

// forwardEvents moves loop events to the public channel until the loop stops or the document closes
func forwardEvents(src *protocol.Mailbox[event.Event], out chan<- event.Event, closing <-chan struct{}) {
	defer close(out)
	for {
		ev, err := src.Pop(context.Background())
		if err != nil {
			return
		}
		select {
		case out <- ev:
		case <-closing:
			return
		}
	}
}

// Root returns a handle to the implicit root container
func (d *Document) Root() ContainerHandle {
	return ContainerHandle{id: RootID, doc: d}
}

// AddWidget adds a widget under the root
func (d *Document) AddWidget(id ID, w widget.Widget) (WidgetHandle, error) {
	return d.Root().AddWidget(id, w)
}

// AddContainer adds a container under the root
func (d *Document) AddContainer(id ID, st style.Style) (ContainerHandle, error) {
	return d.Root().AddContainer(id, st)
}

// GetContainer returns a handle to an existing container
// ErrNotFound when id is absent or names a widget
func (d *Document) GetContainer(ctx context.Context, id ID) (ContainerHandle, error) {
	v, err := d.Lookup(ctx, id)
	if err != nil {
		return ContainerHandle{}, err
	}
	if !v.IsContainer() {
		return ContainerHandle{}, fmt.Errorf("%w: %q is a widget", ErrNotFound, string(id))
	}
	return ContainerHandle{id: id, doc: d}, nil
}

// GetWidget returns a handle to an existing widget
// ErrNotFound when id is absent or names a container
func (d *Document) GetWidget(ctx context.Context, id ID) (WidgetHandle, error) {
	v, err := d.Lookup(ctx, id)
	if err != nil {
		return WidgetHandle{}, err
	}
	if v.IsContainer() {
		return WidgetHandle{}, fmt.Errorf("%w: %q is a container", ErrNotFound, string(id))
	}
	return WidgetHandle{id: id, doc: d}, nil
}

// Lookup returns a copy of a node as the loop sees it after every earlier command
func (d *Document) Lookup(ctx context.Context, id ID) (node.View, error) {
	q := protocol.NewGetNode(id)
	if err := d.commands.Push(q); err != nil {
		return node.View{}, err
	}

	select {
	case r, ok := <-q.Reply:
		if !ok {
			return node.View{}, ErrChannelClosed
		}
		return r.View, r.Err
	case <-d.loop.Done():
		// The loop closes every reply it did not answer; a crash can skip that
		select {
		case r, ok := <-q.Reply:
			if ok {
				return r.View, r.Err
			}
		default:
		}
		return node.View{}, ErrChannelClosed
	case <-ctx.Done():
		return node.View{}, ctx.Err()
	}
}

// Sync returns once every command sent before it has been applied
func (d *Document) Sync(ctx context.Context) error {
	_, err := d.Lookup(ctx, RootID)
	return err
}

// Remove deletes a node and its subtree
func (d *Document) Remove(id ID) error {
	if id == RootID {
		return fmt.Errorf("%w: %q", ErrCannotRemoveRoot, string(id))
	}
	return d.send(protocol.RemoveNode{ID: id})
}

// SetStyle replaces a node's style
func (d *Document) SetStyle(id ID, st style.Style) error {
	return d.send(protocol.UpdateStyle{ID: id, Style: st})
}

// UpdateWidget replaces a widget's payload, keeping its place and style
func (d *Document) UpdateWidget(id ID, w widget.Widget) error {
	if w == nil {
		return fmt.Errorf("%w: nil widget for %q", ErrInvalidNode, string(id))
	}
	return d.send(protocol.UpdateWidget{ID: id, Widget: w})
}

// Events delivers input and frame events in order
// The channel is closed when the loop stops; that is the end of the stream, not an error
func (d *Document) Events() <-chan event.Event {
	return d.events
}

// Done is closed once the loop has stopped and the terminal is restored
func (d *Document) Done() <-chan struct{} {
	return d.loop.Done()
}

// Err returns the crash that stopped the loop, if any
func (d *Document) Err() error {
	return d.loop.Err()
}

// Close stops the loop after the commands already sent and waits for terminal restoration
// Safe to call multiple times; every call returns the loop's crash error, if any
func (d *Document) Close() error {
	d.closeOnce.Do(func() {
		d.cleanup.Stop()
		d.teardown.release()
		<-d.teardown.released
		d.closeErr = d.loop.Err()
	})
	return d.closeErr
}

// Stats is a snapshot of render loop counters
type Stats struct {
	State           string
	Nodes           int64
	Commands        int64
	Rejected        int64
	Queries         int64
	Frames          int64
	PaintErrors     int64
	Events          int64
	EventsCoalesced int64
	PaintMs         float64
}

// Stats reads the loop metrics
func (d *Document) Stats() Stats {
	snap := d.status.Snapshot()
	return Stats{
		State:           engine.State(snap.Ints[status.LoopState]).String(),
		Nodes:           snap.Ints[status.StoreNodes],
		Commands:        snap.Ints[status.LoopCommands],
		Rejected:        snap.Ints[status.LoopRejected],
		Queries:         snap.Ints[status.LoopQueries],
		Frames:          snap.Ints[status.LoopFrames],
		PaintErrors:     snap.Ints[status.LoopPaintErrors],
		Events:          snap.Ints[status.LoopEvents],
		EventsCoalesced: snap.Ints[status.LoopEventsCoalesced],
		PaintMs:         snap.Floats[status.LoopPaintMs],
	}
}

func (d *Document) send(c protocol.Command) error {
	return d.commands.Push(c)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
