// If you are AI: This file defines the structural event listener and its dispatch.
// Each notification concerns the pad the listener is bound to, never a captured stale pad.

package graph

import "gsteditor/internal/core/factory"

// PadInfo is a snapshot of a pad at the time of an event.
// It stays valid after the pad is removed.
type PadInfo struct {
	ID        PadID
	Node      NodeID
	Name      string
	Path      string
	Direction factory.Direction
	Template  string
	Peer      string // peer pad path, empty when unlinked
}

// Listener receives structural events synchronously during graph mutation.
type Listener interface {
	PadAdded(pad PadInfo)
	PadRemoved(pad PadInfo)
	PadLinked(pad PadInfo)
	PadUnlinked(pad PadInfo)
}

// multiListener fans events out to several listeners in order.
type multiListener []Listener

// Multi combines listeners; nil entries are dropped.
func Multi(listeners ...Listener) Listener {
	var out multiListener
	for _, l := range listeners {
		if l != nil {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// PadAdded forwards the event to every listener.
func (m multiListener) PadAdded(pad PadInfo) {
	for _, l := range m {
		l.PadAdded(pad)
	}
}

// PadRemoved forwards the event to every listener.
func (m multiListener) PadRemoved(pad PadInfo) {
	for _, l := range m {
		l.PadRemoved(pad)
	}
}

// PadLinked forwards the event to every listener.
func (m multiListener) PadLinked(pad PadInfo) {
	for _, l := range m {
		l.PadLinked(pad)
	}
}

// PadUnlinked forwards the event to every listener.
func (m multiListener) PadUnlinked(pad PadInfo) {
	for _, l := range m {
		l.PadUnlinked(pad)
	}
}

// WatchNode binds l to every pad event of the node. A nil l removes the binding.
func (g *Graph) WatchNode(id NodeID, l Listener) {
	if l == nil {
		delete(g.nodeWatch, id)
		return
	}
	g.nodeWatch[id] = l
}

// WatchPad binds l to the events of one pad, overriding the node binding.
func (g *Graph) WatchPad(id PadID, l Listener) {
	if l == nil {
		delete(g.padWatch, id)
		return
	}
	g.padWatch[id] = l
}

// Info returns a snapshot of a live pad.
func (g *Graph) Info(id PadID) (PadInfo, bool) {
	p, ok := g.Pad(id)
	if !ok {
		return PadInfo{}, false
	}
	info := PadInfo{
		ID:        p.id,
		Node:      p.node,
		Name:      p.name,
		Path:      g.PadPath(p.id),
		Direction: p.template.Direction,
		Template:  p.template.Name,
	}
	if p.peer != NoPad {
		info.Peer = g.PadPath(p.peer)
	}
	return info, true
}

// listenerFor returns the listener bound to the pad, falling back to its node.
func (g *Graph) listenerFor(p *Pad) Listener {
	if l, ok := g.padWatch[p.id]; ok {
		return l
	}
	return g.nodeWatch[p.node]
}

// notify delivers one event about pad id, if anyone listens.
func (g *Graph) notify(id PadID, deliver func(Listener, PadInfo)) {
	p, ok := g.Pad(id)
	if !ok {
		return
	}
	l := g.listenerFor(p)
	if l == nil {
		return
	}
	info, _ := g.Info(id)
	deliver(l, info)
}

// notifyInfo delivers an event from an already captured snapshot.
func (g *Graph) notifyInfo(l Listener, info PadInfo, deliver func(Listener, PadInfo)) {
	if l != nil {
		deliver(l, info)
	}
}

// deliverAdded calls PadAdded.
func deliverAdded(l Listener, p PadInfo) { l.PadAdded(p) }

// deliverRemoved calls PadRemoved.
func deliverRemoved(l Listener, p PadInfo) { l.PadRemoved(p) }

// deliverLinked calls PadLinked.
func deliverLinked(l Listener, p PadInfo) { l.PadLinked(p) }

// deliverUnlinked calls PadUnlinked.
func deliverUnlinked(l Listener, p PadInfo) { l.PadUnlinked(p) }
