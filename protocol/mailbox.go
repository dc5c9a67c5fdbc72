package protocol

import (
	"context"
	"errors"
	"sync"
)

// ErrChannelClosed is returned once the receiving side has shut down
var ErrChannelClosed = errors.New("channel closed")

// Mailbox is an unbounded multi-producer single-consumer FIFO queue
// Thread-Safety:
//   - Push: any number of producers, never blocks
//   - Drain/Pop: single consumer
//
// A single lock orders all pushes, so each producer's messages stay in program order
type Mailbox[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	ready  chan struct{} // 1-slot wakeup, signaled on push and close
}

// NewMailbox creates an empty open mailbox
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{
		items: make([]T, 0, 64),
		ready: make(chan struct{}, 1),
	}
}

// Push appends v, fails only after Close
func (m *Mailbox[T]) Push(v T) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrChannelClosed
	}
	m.items = append(m.items, v)
	m.mu.Unlock()

	m.signal()
	return nil
}

// PushFunc appends the result of merge(last, ok) under the lock
// merge receives the newest queued item (ok false when empty) and returns the
// value to enqueue and whether it replaces that newest item
func (m *Mailbox[T]) PushFunc(merge func(last T, ok bool) (v T, replace bool)) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrChannelClosed
	}
	var last T
	n := len(m.items)
	if n > 0 {
		last = m.items[n-1]
	}
	v, replace := merge(last, n > 0)
	if replace && n > 0 {
		m.items[n-1] = v
	} else {
		m.items = append(m.items, v)
	}
	m.mu.Unlock()

	m.signal()
	return nil
}

func (m *Mailbox[T]) signal() {
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Ready returns the wakeup channel
// A receive means items may be pending or the mailbox was closed, follow with Drain
func (m *Mailbox[T]) Ready() <-chan struct{} {
	return m.ready
}

// Drain removes and returns all pending items in FIFO order
// closed reports whether Close has been called; items pushed before Close are still returned
func (m *Mailbox[T]) Drain() (items []T, closed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) == 0 {
		return nil, m.closed
	}
	items = m.items
	m.items = make([]T, 0, max(cap(items)/2, 16))
	return items, m.closed
}

// Pop blocks until an item is available, the mailbox is closed and empty, or ctx is done
func (m *Mailbox[T]) Pop(ctx context.Context) (T, error) {
	var zero T
	for {
		m.mu.Lock()
		if len(m.items) > 0 {
			v := m.items[0]
			m.items[0] = zero
			m.items = m.items[1:]
			more := len(m.items) > 0 || m.closed
			m.mu.Unlock()
			if more {
				m.signal()
			}
			return v, nil
		}
		if m.closed {
			m.mu.Unlock()
			return zero, ErrChannelClosed
		}
		m.mu.Unlock()

		select {
		case <-m.ready:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Close rejects further pushes and wakes the consumer
// Safe to call multiple times
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	m.signal()
}

// Closed reports whether Close has been called
func (m *Mailbox[T]) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Len returns the number of pending items
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
