// If you are AI: This file implements pad creation, removal, linking and unlinking.
// Links are always symmetric: a pad's peer has the pad as its own peer.

package graph

import (
	"fmt"

	"gsteditor/internal/core/factory"
)

// AddPad creates a pad on an element from one of its factory templates.
// An empty name expands a %u/%d pattern to the lowest free index, or uses the
// template name. An always template is only accepted when its pad is missing.
// The listener, if any, is bound to the new pad.
func (g *Graph) AddPad(node NodeID, template, name string, l Listener) (PadID, error) {
	n, ok := g.Node(node)
	if !ok {
		return NoPad, fmt.Errorf("%w: node %d", ErrNotFound, node)
	}
	tpl, ok := n.factory.Template(template)
	if !ok {
		return NoPad, fmt.Errorf("%w: element %q has no pad template %q", ErrNotFound, g.displayPath(node), template)
	}
	if tpl.Presence == factory.PresenceAlways && g.hasTemplatePad(node, tpl.Name) {
		return NoPad, fmt.Errorf("%w: %q already has its %q pad", ErrStaticPad, g.displayPath(node), tpl.Name)
	}

	switch {
	case name == "" && tpl.IsPattern():
		name = g.freePadName(node, tpl)
	case name == "":
		name = tpl.Name
	default:
		if err := validateName(name); err != nil {
			return NoPad, err
		}
	}
	if _, taken := g.padByName(node, name); taken {
		return NoPad, fmt.Errorf("%w: element %q already has a pad named %q", ErrNameTaken, g.displayPath(node), name)
	}
	if _, taken := g.child(node, name); taken {
		return NoPad, fmt.Errorf("%w: element %q already has a child named %q", ErrNameTaken, g.displayPath(node), name)
	}

	id := g.newPad(node, tpl, name)
	g.WatchPad(id, l)
	g.notify(id, deliverAdded)
	return id, nil
}

// RemovePad unlinks and removes a sometimes or request pad.
func (g *Graph) RemovePad(id PadID) error {
	p, ok := g.Pad(id)
	if !ok {
		return fmt.Errorf("%w: pad %d", ErrNotFound, id)
	}
	if p.template.Presence == factory.PresenceAlways {
		return fmt.Errorf("%w: %q", ErrStaticPad, g.PadPath(id))
	}
	g.removePad(id)
	return nil
}

// removePad unlinks, detaches and frees a pad, then reports the removal.
func (g *Graph) removePad(id PadID) {
	p := g.pads[id]
	if p.peer != NoPad {
		g.unlink(id)
	}

	info, _ := g.Info(id)
	l := g.listenerFor(p)

	n := g.nodes[p.node]
	n.pads = removeID(n.pads, id)
	delete(g.padWatch, id)
	g.pads[id] = nil

	g.notifyInfo(l, info, deliverRemoved)
}

// Link connects a source pad to a sink pad.
func (g *Graph) Link(src, sink PadID) error {
	if err := g.CanLink(src, sink, false); err != nil {
		return err
	}
	g.link(src, sink)
	return nil
}

// Relink connects src to sink, first dropping any existing links of either pad.
// Validation happens before anything changes.
func (g *Graph) Relink(src, sink PadID) error {
	if err := g.CanLink(src, sink, true); err != nil {
		return err
	}
	if g.pads[src].peer == sink {
		return nil
	}
	if g.pads[src].peer != NoPad {
		g.unlink(src)
	}
	if g.pads[sink].peer != NoPad {
		g.unlink(sink)
	}
	g.link(src, sink)
	return nil
}

// Unlink breaks the link of a pad and its peer.
func (g *Graph) Unlink(id PadID) error {
	p, ok := g.Pad(id)
	if !ok {
		return fmt.Errorf("%w: pad %d", ErrNotFound, id)
	}
	if p.peer == NoPad {
		return fmt.Errorf("%w: %q", ErrNotLinked, g.PadPath(id))
	}
	g.unlink(id)
	return nil
}

// CanLink reports why src and sink cannot be linked, or nil.
// With relink set, existing links are not an obstacle.
func (g *Graph) CanLink(src, sink PadID, relink bool) error {
	s, ok := g.Pad(src)
	if !ok {
		return fmt.Errorf("%w: pad %d", ErrNotFound, src)
	}
	k, ok := g.Pad(sink)
	if !ok {
		return fmt.Errorf("%w: pad %d", ErrNotFound, sink)
	}
	if s.Direction() != factory.DirectionSrc {
		return fmt.Errorf("%w: %q is not a source pad", ErrDirection, g.PadPath(src))
	}
	if k.Direction() != factory.DirectionSink {
		return fmt.Errorf("%w: %q is not a sink pad", ErrDirection, g.PadPath(sink))
	}
	if s.node == k.node {
		return fmt.Errorf("%w: %q and %q belong to the same element", ErrDirection, g.PadPath(src), g.PadPath(sink))
	}
	if !relink {
		if s.peer != NoPad {
			return fmt.Errorf("%w: %q is linked to %q", ErrAlreadyLinked, g.PadPath(src), g.PadPath(s.peer))
		}
		if k.peer != NoPad {
			return fmt.Errorf("%w: %q is linked to %q", ErrAlreadyLinked, g.PadPath(sink), g.PadPath(k.peer))
		}
	}
	if !factory.CapsCompatible(s.template, k.template) {
		return fmt.Errorf("%w: %q (%s) and %q (%s)", ErrIncompatible,
			g.PadPath(src), s.template.Caps, g.PadPath(sink), k.template.Caps)
	}
	return nil
}

// link sets both peers and notifies each side about its own pad.
func (g *Graph) link(src, sink PadID) {
	g.pads[src].peer = sink
	g.pads[sink].peer = src
	g.notify(src, deliverLinked)
	g.notify(sink, deliverLinked)
}

// unlink clears both peers. Each side hears about its own pad, with Peer set
// to the pad it was linked to.
func (g *Graph) unlink(id PadID) {
	p := g.pads[id]
	peer := g.pads[p.peer]

	first, _ := g.Info(p.id)
	second, _ := g.Info(peer.id)
	p.peer = NoPad
	peer.peer = NoPad

	g.notifyInfo(g.listenerFor(p), first, deliverUnlinked)
	g.notifyInfo(g.listenerFor(peer), second, deliverUnlinked)
}

// freePadName expands a template pattern with the lowest index not in use.
func (g *Graph) freePadName(node NodeID, tpl factory.PadTemplate) string {
	for i := 0; ; i++ {
		name := tpl.PadName(i)
		_, pad := g.padByName(node, name)
		_, child := g.child(node, name)
		if !pad && !child {
			return name
		}
	}
}

// hasTemplatePad reports whether node has a pad made from the named template.
func (g *Graph) hasTemplatePad(node NodeID, template string) bool {
	for _, id := range g.nodes[node].pads {
		if g.pads[id].template.Name == template {
			return true
		}
	}
	return false
}
