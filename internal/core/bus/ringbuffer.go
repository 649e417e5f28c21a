// If you are AI: This file implements a lock-free ring buffer for subscriber event delivery.
// The ring buffer provides bounded buffering with configurable backpressure behavior.
// CRITICAL: Both writePos and readPos increment freely (never masked). Only use the mask
// when indexing into the buffer array. The emptiness check readPos==writePos relies on
// both counters using the same domain.

package bus

import (
	"sync/atomic"
)

// BackpressureStrategy defines how the ring buffer handles overflow.
type BackpressureStrategy uint8

const (
	// BackpressureDropOldest drops the oldest event when buffer is full.
	BackpressureDropOldest BackpressureStrategy = iota
	// BackpressureDropNewest drops the newest event when buffer is full.
	BackpressureDropNewest
)

// RingBuffer is a bounded circular buffer for Event delivery.
// It is safe for one writer and one reader. With DropOldest the writer may
// advance readPos, so readers claim slots with compare-and-swap.
type RingBuffer struct {
	buffer   []atomic.Pointer[Event]
	size     uint32 // power of 2
	mask     uint32 // size - 1
	writePos atomic.Uint32
	readPos  atomic.Uint32
	strategy BackpressureStrategy
	dropped  atomic.Uint64
}

// NewRingBuffer creates a new ring buffer with the specified capacity.
// Capacity is rounded up to a power of 2 for efficient modulo via bitmask.
func NewRingBuffer(capacity uint32, strategy BackpressureStrategy) *RingBuffer {
	actualSize := uint32(1)
	for actualSize < capacity {
		actualSize <<= 1
	}

	return &RingBuffer{
		buffer:   make([]atomic.Pointer[Event], actualSize),
		size:     actualSize,
		mask:     actualSize - 1,
		strategy: strategy,
	}
}

// Write attempts to write an event to the buffer.
// Returns true if written, false if the buffer was full and the event was dropped (DropNewest).
func (rb *RingBuffer) Write(ev *Event) bool {
	if ev == nil {
		return false
	}

	writePos := rb.writePos.Load()
	readPos := rb.readPos.Load()

	// Unsigned subtraction works correctly even after uint32 wrap.
	if writePos-readPos >= rb.size {
		rb.dropped.Add(1)
		if rb.strategy == BackpressureDropNewest {
			return false
		}
		// A failed swap means the reader just took the oldest slot.
		rb.readPos.CompareAndSwap(readPos, readPos+1)
	}

	rb.buffer[writePos&rb.mask].Store(ev)
	rb.writePos.Store(writePos + 1)
	return true
}

// Read attempts to read an event from the buffer.
// Returns the event and true if available, nil and false if empty.
func (rb *RingBuffer) Read() (*Event, bool) {
	for {
		readPos := rb.readPos.Load()
		if readPos == rb.writePos.Load() {
			return nil, false
		}
		ev := rb.buffer[readPos&rb.mask].Load()
		if rb.readPos.CompareAndSwap(readPos, readPos+1) {
			return ev, true
		}
	}
}

// Dropped returns the number of events dropped due to backpressure.
func (rb *RingBuffer) Dropped() uint64 {
	return rb.dropped.Load()
}

// Len returns the number of buffered events.
func (rb *RingBuffer) Len() uint32 {
	return rb.writePos.Load() - rb.readPos.Load()
}

// Available returns the number of free slots in the buffer.
func (rb *RingBuffer) Available() uint32 {
	return rb.size - rb.Len()
}
