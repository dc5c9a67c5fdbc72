package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Simulation is an in-memory Terminal backed by tcell.SimulationScreen
// Used by tests and headless runs that still want painted output
type Simulation struct {
	*screenTerminal
	sim  tcell.SimulationScreen
	w, h int
}

// NewSimulation creates a simulated terminal of the given size
func NewSimulation(width, height int) *Simulation {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Simulation{
		screenTerminal: newScreenTerminal(sim),
		sim:            sim,
		w:              width,
		h:              height,
	}
}

// Init initializes the simulated screen and applies the requested size
func (s *Simulation) Init() error {
	if err := s.screenTerminal.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.sim.SetSize(s.w, s.h)
	s.mu.Unlock()
	return nil
}

// Resize changes the simulated size and queues a resize event
func (s *Simulation) Resize(width, height int) {
	s.mu.Lock()
	s.w, s.h = width, height
	active := s.initialized && !s.finalized
	if active {
		s.sim.SetSize(width, height)
	}
	s.mu.Unlock()

	if active {
		_ = s.sim.PostEvent(tcell.NewEventResize(width, height))
	}
}

// InjectKey queues a key event, blocks while the input queue is full
func (s *Simulation) InjectKey(key tcell.Key, r rune, mod tcell.ModMask) {
	if !s.active() {
		return
	}
	s.sim.InjectKey(key, r, mod)
}

// InjectRune queues a printable key press
func (s *Simulation) InjectRune(r rune) {
	s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
}

// InjectMouse queues a mouse event
func (s *Simulation) InjectMouse(x, y int, buttons tcell.ButtonMask) {
	if !s.active() {
		return
	}
	s.sim.InjectMouse(x, y, buttons, tcell.ModNone)
}

// Contents returns the visible screen as one string per row
func (s *Simulation) Contents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}

	cells, w, h := s.sim.GetContents()
	rows := make([]string, 0, h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.Reset()
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		rows = append(rows, b.String())
	}
	return rows
}

// CellAt returns the visible cell at x, y
func (s *Simulation) CellAt(x, y int) (Cell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return Cell{}, false
	}

	cells, w, h := s.sim.GetContents()
	if x < 0 || y < 0 || x >= w || y >= h {
		return Cell{}, false
	}
	c := cells[y*w+x]

	out := Cell{Rune: ' '}
	if len(c.Runes) > 0 {
		out.Rune = c.Runes[0]
	}
	fg, bg, _ := c.Style.Decompose()
	out.Fg = colorFromTcell(fg)
	out.Bg = colorFromTcell(bg)
	out.Attrs = AttrFromTcell(c.Style)
	return out, true
}

// Finalized reports whether Fini has run
func (s *Simulation) Finalized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalized
}

func (s *Simulation) active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized && !s.finalized
}
