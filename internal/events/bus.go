package events

import (
	"sync"
)

const defaultCapacity = 1000

// Bus is a bounded multi-producer broadcast of Events. Publish blocks when
// the bus is full rather than dropping events; a slow subscriber therefore
// applies backpressure all the way to the producers.
//
// A single dispatch goroutine owns every subscriber channel, so channels
// are only ever closed from one place.
type Bus struct {
	events chan Event
	done   chan struct{}

	mu       sync.Mutex
	subs     []*Subscription
	terminal map[string]Event
	closed   bool

	closeOnce sync.Once
}

// Subscription is one consumer's filtered view of the bus. Events() yields
// events for the subscribed run and is closed after the run's terminal
// event has been delivered, or when the subscriber unsubscribes.
type Subscription struct {
	bus   *Bus
	runID string
	ch    chan Event
	done  chan struct{}
	once  sync.Once
}

// Events returns the channel of events for the subscribed run.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Unsubscribe detaches the subscription. It is safe to call more than once.
// The events channel is not closed on unsubscribe; callers stop reading.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.done)
		s.bus.remove(s)
	})
}

// NewBus creates a Bus with the given capacity (defaults to 1000) and
// starts its dispatch goroutine.
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	b := &Bus{
		events:   make(chan Event, capacity),
		done:     make(chan struct{}),
		terminal: make(map[string]Event),
	}
	go b.dispatch()
	return b
}

// Publish enqueues an event, blocking while the bus is at capacity.
// Events published after Close are discarded.
func (b *Bus) Publish(ev Event) {
	select {
	case b.events <- ev:
	case <-b.done:
	}
}

// Subscribe returns a subscription filtered to one run. An empty runID
// subscribes to every run; wildcard subscriptions stay open across
// terminal events and end only on Unsubscribe or Close. If the named run
// has already reached a terminal event, the subscription immediately
// yields the historical terminal event and is closed; it never blocks
// forever. Subscribing after Close returns an already-closed subscription
// (the historical terminal event, if any, is still replayed).
func (b *Bus) Subscribe(runID string) *Subscription {
	sub := &Subscription{
		bus:   b,
		runID: runID,
		ch:    make(chan Event, cap(b.events)),
		done:  make(chan struct{}),
	}

	b.mu.Lock()
	if term, ok := b.terminal[runID]; ok && runID != "" {
		b.mu.Unlock()
		sub.ch <- term
		close(sub.ch)
		return sub
	}
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub
	}
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
	return sub
}

// Close shuts the bus down. Pending subscriptions are closed; subsequent
// Publish calls are no-ops.
func (b *Bus) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *Bus) dispatch() {
	for {
		select {
		case ev := <-b.events:
			b.deliver(ev)
		case <-b.done:
			b.mu.Lock()
			b.closed = true
			for _, sub := range b.subs {
				close(sub.ch)
			}
			b.subs = nil
			b.mu.Unlock()
			return
		}
	}
}

func (b *Bus) deliver(ev Event) {
	b.mu.Lock()
	if ev.Kind.Terminal() {
		b.terminal[ev.RunID] = ev
	}
	matched := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.runID == ev.RunID || sub.runID == "" {
			matched = append(matched, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range matched {
		select {
		case sub.ch <- ev:
		case <-sub.done:
			b.remove(sub)
			continue
		case <-b.done:
			return
		}
		if ev.Kind.Terminal() && sub.runID != "" {
			b.remove(sub)
			close(sub.ch)
		}
	}
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			break
		}
	}
	b.mu.Unlock()
}
