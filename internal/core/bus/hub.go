// If you are AI: This file implements the Hub that fans editor events out to subscribers.
// Publish never blocks: slow subscribers lose their oldest events.

package bus

import (
	"sync"
	"time"
)

// Hub distributes events to every attached subscriber.
// Lock expectations: mutex for subscriber management and sequence numbering.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint64]*Subscriber
	nextSubID   uint64
	seq         uint64
	now         func() time.Time
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uint64]*Subscriber),
		nextSubID:   1,
		now:         time.Now,
	}
}

// Subscribe attaches a new subscriber with a drop-oldest buffer.
func (h *Hub) Subscribe(capacity uint32) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubID
	h.nextSubID++

	sub := NewSubscriber(id, capacity, BackpressureDropOldest)
	h.subscribers[id] = sub
	return sub
}

// Unsubscribe detaches a subscriber.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers, id)
}

// Publish stamps the event with the next sequence number and the current time,
// then delivers it to every subscriber. The event must not be modified afterwards.
func (h *Hub) Publish(ev *Event) {
	if ev == nil {
		return
	}

	h.mu.Lock()
	h.seq++
	ev.Seq = h.seq
	if ev.Time.IsZero() {
		ev.Time = h.now()
	}
	subs := make([]*Subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(ev)
	}
}

// SubscriberCount returns the number of attached subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Published returns the sequence number of the last published event.
func (h *Hub) Published() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.seq
}
