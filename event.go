// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// EventKind identifies a pointer event.
type EventKind uint8

const (
	// EventMove is a pointer motion over the canvas.
	EventMove EventKind = iota
	// EventClick is a primary-button click on the canvas.
	EventClick
)

// String returns the lower-case name used in replay scripts.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventClick:
		return "click"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is a pointer event in canvas pixel coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// Click returns a click event at (x, y).
func Click(x, y int) Event { return Event{Kind: EventClick, X: x, Y: y} }

// Move returns a move event at (x, y).
func Move(x, y int) Event { return Event{Kind: EventMove, X: x, Y: y} }

func (e Event) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.X, e.Y)
}

// DefaultQueueCapacity is the event queue size used by the drivers.
const DefaultQueueCapacity = 10

// EventQueue is a bounded multi-producer, single-consumer event channel.
//
// Producers on platform callbacks use TrySend, which never blocks. A move
// that finds the queue full is dropped: only the latest pointer position
// matters for the live selection box. A click is never dropped for moves;
// the queued moves are discarded to make room for it.
type EventQueue struct {
	ch      chan Event
	done    chan struct{}
	once    sync.Once
	mu      sync.RWMutex // guards sends against close
	closed  bool
	dropped atomic.Int64
}

// NewEventQueue creates a queue holding up to capacity pending events.
// A non-positive capacity uses DefaultQueueCapacity.
func NewEventQueue(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &EventQueue{
		ch:   make(chan Event, capacity),
		done: make(chan struct{}),
	}
}

// TrySend enqueues ev without blocking. It reports false when the queue
// is closed, when ev is a move and the queue is full, or when ev is a click
// and every queued event is a click too.
func (q *EventQueue) TrySend(ev Event) bool {
	if ev.Kind == EventClick {
		return q.sendClick(ev)
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.dropped.Add(1)
		return false
	}
	select {
	case q.ch <- ev:
		return true
	default:
		q.dropped.Add(1)
		Logger().Debug("mandel: event dropped", "event", ev.String())
		return false
	}
}

// sendClick enqueues a click, coalescing queued moves when the queue is
// full. It holds the write lock so no other producer refills the freed
// slots; it therefore waits for blocked Send calls to finish.
func (q *EventQueue) sendClick(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.dropped.Add(1)
		return false
	}
	select {
	case q.ch <- ev:
		return true
	default:
	}

	q.coalesceMoves()
	select {
	case q.ch <- ev:
		return true
	default:
		q.dropped.Add(1)
		Logger().Warn("mandel: click dropped, queue holds only clicks", "event", ev.String())
		return false
	}
}

// coalesceMoves takes the pending events off the channel and puts the
// clicks back in order. Every queued move precedes the click being sent,
// which supersedes it. The caller holds q.mu for writing.
func (q *EventQueue) coalesceMoves() {
	pending := make([]Event, 0, cap(q.ch))
drain:
	for {
		select {
		case ev := <-q.ch:
			pending = append(pending, ev)
		default:
			break drain
		}
	}

	moves := 0
	for _, ev := range pending {
		if ev.Kind == EventMove {
			moves++
			continue
		}
		q.ch <- ev
	}
	if moves > 0 {
		q.dropped.Add(int64(moves))
		Logger().Debug("mandel: moves coalesced", "count", moves)
	}
}

// Send enqueues ev, blocking while the queue is full. It returns ctx.Err()
// if ctx ends first and ErrQueueClosed if the queue is closed.
func (q *EventQueue) Send(ctx context.Context, ev Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ch <- ev:
		return nil
	case <-q.done:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the receive side for the single consumer. The channel is
// closed by Close once pending sends have finished.
func (q *EventQueue) Events() <-chan Event {
	return q.ch
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.ch)
}

// Dropped returns the number of events discarded by TrySend.
func (q *EventQueue) Dropped() int64 {
	return q.dropped.Load()
}

// Close stops accepting events. Events already queued remain readable.
// Close is safe to call multiple times.
func (q *EventQueue) Close() {
	q.once.Do(func() {
		close(q.done)
		q.mu.Lock()
		q.closed = true
		close(q.ch)
		q.mu.Unlock()
	})
}

// ErrQueueClosed is returned by Send after Close.
var ErrQueueClosed = errors.New("mandel: event queue closed")
