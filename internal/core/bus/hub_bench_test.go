// If you are AI: This file contains benchmarks for publish/fanout performance.

package bus

import (
	"testing"
)

// BenchmarkPublishSingleSubscriber benchmarks publish to a single subscriber.
func BenchmarkPublishSingleSubscriber(b *testing.B) {
	hub := NewHub()
	sub := hub.Subscribe(1000)
	ev := &Event{Type: EventCommand}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		hub.Publish(ev)
		// Read to keep buffer from filling
		sub.Buffer().Read()
	}
}

// BenchmarkPublishFanoutOnly benchmarks the fanout operation without reading.
func BenchmarkPublishFanoutOnly(b *testing.B) {
	hub := NewHub()
	for i := 0; i < 10; i++ {
		hub.Subscribe(10000)
	}
	ev := &Event{Type: EventCommand}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		hub.Publish(ev)
	}
}
