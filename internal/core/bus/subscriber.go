// If you are AI: This file defines the Subscriber that receives events from a hub.
// Subscribers receive events via a ring buffer and a wakeup channel.

package bus

// Subscriber is a consumer of events from a Hub.
// Each subscriber has its own ring buffer so the publisher never blocks.
type Subscriber struct {
	id     uint64
	buffer *RingBuffer
	ready  chan struct{}
}

// NewSubscriber creates a new subscriber with the specified buffer capacity and strategy.
func NewSubscriber(id uint64, capacity uint32, strategy BackpressureStrategy) *Subscriber {
	return &Subscriber{
		id:     id,
		buffer: NewRingBuffer(capacity, strategy),
		ready:  make(chan struct{}, 1),
	}
}

// ID returns the unique subscriber identifier.
func (s *Subscriber) ID() uint64 {
	return s.id
}

// Buffer returns the subscriber's ring buffer.
func (s *Subscriber) Buffer() *RingBuffer {
	return s.buffer
}

// Ready returns a channel that receives a value after new events were written.
// One wakeup may stand for several events; drain the buffer after each.
func (s *Subscriber) Ready() <-chan struct{} {
	return s.ready
}

// deliver writes an event and wakes the reader without blocking.
func (s *Subscriber) deliver(ev *Event) {
	s.buffer.Write(ev)
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Drain reads up to maxEvents buffered events and passes each to fn.
// It stops early when fn returns an error. Returns the number of events handled.
func (s *Subscriber) Drain(maxEvents int, fn func(*Event) error) (int, error) {
	handled := 0
	for handled < maxEvents {
		ev, ok := s.buffer.Read()
		if !ok {
			break
		}
		if err := fn(ev); err != nil {
			return handled, err
		}
		handled++
	}
	return handled, nil
}

// Dropped returns the number of events dropped due to backpressure.
func (s *Subscriber) Dropped() uint64 {
	return s.buffer.Dropped()
}
