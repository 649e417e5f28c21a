// If you are AI: This file implements the per-client writer that drains a hub subscription.
// Events are JSON text frames; a slow client loses its oldest events, never blocks the editor.

package events

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"gsteditor/internal/core/bus"
)

// writeTimeout bounds one frame write.
const writeTimeout = 10 * time.Second

// drainBatch caps the events written per wakeup.
const drainBatch = 64

// Conn is the part of a WebSocket connection the feed uses.
type Conn interface {
	WriteJSON(v any) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (messageType int, p []byte, err error)
}

// feed writes one subscriber's events to one connection.
type feed struct {
	conn   Conn
	sub    *bus.Subscriber
	filter map[bus.EventType]bool
}

// newFeed creates a feed; a nil filter passes every event.
func newFeed(conn Conn, sub *bus.Subscriber, filter map[bus.EventType]bool) *feed {
	return &feed{conn: conn, sub: sub, filter: filter}
}

// run writes events until ctx ends or a write fails.
func (f *feed) run(ctx context.Context) error {
	for {
		for {
			n, err := f.sub.Drain(drainBatch, f.write)
			if err != nil {
				return err
			}
			if n < drainBatch {
				break
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-f.sub.Ready():
		}
	}
}

// write sends one event if it passes the filter.
func (f *feed) write(ev *bus.Event) error {
	if f.filter != nil && !f.filter[ev.Type] {
		return nil
	}
	if err := f.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return f.conn.WriteJSON(ev)
}

// readPump discards client frames and calls done when the client goes away.
// Reading is required for gorilla to process close and ping frames.
func (f *feed) readPump(done context.CancelFunc) {
	defer done()
	for {
		if _, _, err := f.conn.ReadMessage(); err != nil {
			return
		}
	}
}

var _ Conn = (*websocket.Conn)(nil)
