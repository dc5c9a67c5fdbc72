package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ccui/core"
)

// Service polls terminal input on its own goroutine
// It is the only reader of PollEvent; Stop releases the terminal
type Service struct {
	term    Terminal
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
	crash   *core.CrashError
}

// NewService creates a service over an initialized terminal
func NewService(term Terminal) *Service {
	return &Service{
		term:    term,
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name returns the service name used in logs
func (s *Service) Name() string {
	return "terminal"
}

// Start launches the input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.stopped {
		return nil
	}
	s.running = true

	core.Go(s.pollLoop, s.pollDone)
	return nil
}

// pollDone restores the terminal when the poller crashed, then closes the event channel
func (s *Service) pollDone(crash *core.CrashError) {
	if crash != nil {
		s.mu.Lock()
		s.crash = crash
		s.mu.Unlock()
		s.term.Fini()
	}
	close(s.eventCh)
	close(s.doneCh)
}

// Err returns the panic that stopped the poller, if any
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.crash == nil {
		return nil
	}
	return s.crash
}

// pollLoop reads input events until the terminal is finalized or stop is signaled
func (s *Service) pollLoop() {
	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.term.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop signals the poller, restores the terminal and waits for the poller to exit
// Safe to call multiple times
func (s *Service) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	wasRunning := s.running
	s.mu.Unlock()

	close(s.stopCh)

	// Fini unblocks PollEvent
	s.term.Fini()

	if wasRunning {
		<-s.doneCh
	} else {
		close(s.eventCh)
	}
	return nil
}

// Terminal returns the wrapped terminal instance
func (s *Service) Terminal() Terminal {
	return s.term
}

// Events returns the input event channel, closed after the poller exits
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
