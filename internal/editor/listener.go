// If you are AI: This file forwards structural graph events to the event hub and the log.

package editor

import (
	"gsteditor/internal/core/bus"
	"gsteditor/internal/core/graph"
)

// sessionListener is installed on every element and pad the editor creates.
type sessionListener struct {
	editor *Editor
}

// PadAdded publishes a pad-added event.
func (l *sessionListener) PadAdded(pad graph.PadInfo) {
	l.forward(bus.EventPadAdded, pad)
}

// PadRemoved publishes a pad-removed event.
func (l *sessionListener) PadRemoved(pad graph.PadInfo) {
	l.forward(bus.EventPadRemoved, pad)
}

// PadLinked publishes a pad-linked event.
func (l *sessionListener) PadLinked(pad graph.PadInfo) {
	l.forward(bus.EventPadLinked, pad)
}

// PadUnlinked publishes a pad-unlinked event naming the former peer.
func (l *sessionListener) PadUnlinked(pad graph.PadInfo) {
	l.forward(bus.EventPadUnlinked, pad)
}

// forward logs and publishes one pad event.
func (l *sessionListener) forward(t bus.EventType, pad graph.PadInfo) {
	ev := l.editor.log.Debug()
	if ev.Enabled() {
		ev.Str("event", t.String()).Str("pad", pad.Path)
		if pad.Peer != "" {
			ev.Str("peer", pad.Peer)
		}
		ev.Msg("graph changed")
	}
	l.editor.publish(&bus.Event{Type: t, Pad: pad.Path, Peer: pad.Peer})
}

var _ graph.Listener = (*sessionListener)(nil)
