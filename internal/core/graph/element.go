// If you are AI: This file implements element creation and removal.

package graph

import (
	"errors"
	"fmt"
	"strings"

	"gsteditor/internal/core/factory"
)

// ErrInvalidName is returned for empty names or names containing the path separator.
var ErrInvalidName = errors.New("invalid name")

// AddElement creates an element from a factory inside the parent container.
// An empty name is generated from the factory name. The listener, if any, is
// bound to the new element and hears PadAdded for each of its always pads.
func (g *Graph) AddElement(parent NodeID, factoryName, name string, l Listener) (NodeID, error) {
	p, ok := g.Node(parent)
	if !ok {
		return NoNode, fmt.Errorf("%w: parent node %d", ErrNotFound, parent)
	}
	if !p.IsContainer() {
		return NoNode, fmt.Errorf("%w: invalid parent %q", ErrNotContainer, g.displayPath(parent))
	}

	f, ok := g.catalog.Get(factoryName)
	if !ok {
		return NoNode, fmt.Errorf("%w: cannot find element factory %q", ErrNotFound, factoryName)
	}

	if name == "" {
		name = g.generateName(parent, f.Name)
	} else if err := validateName(name); err != nil {
		return NoNode, err
	}
	if _, taken := g.child(parent, name); taken {
		return NoNode, fmt.Errorf("%w: %q already has a child named %q", ErrNameTaken, g.displayPath(parent), name)
	}
	// A child sharing a pad's name would hide the pad from path lookup.
	if _, taken := g.padByName(parent, name); taken {
		return NoNode, fmt.Errorf("%w: %q already has a pad named %q", ErrNameTaken, g.displayPath(parent), name)
	}

	id := g.newNode(parent, f, name)
	n := g.nodes[id]
	for _, spec := range f.Properties {
		// Catalog factories are validated on registration, so defaults parse.
		v, _ := spec.DefaultValue()
		n.props[spec.Name] = v
	}

	g.WatchNode(id, l)
	for _, tpl := range f.Templates {
		if tpl.Presence != factory.PresenceAlways {
			continue
		}
		pad := g.newPad(id, tpl, tpl.Name)
		g.notify(pad, deliverAdded)
	}
	return id, nil
}

// RemoveElement removes an element and everything below it.
// Every pad is unlinked and removed first, with listeners notified.
func (g *Graph) RemoveElement(id NodeID) error {
	if id == g.root {
		return fmt.Errorf("%w: cannot remove the root container", ErrRoot)
	}
	if _, ok := g.Node(id); !ok {
		return fmt.Errorf("%w: node %d", ErrNotFound, id)
	}
	g.removeSubtree(id)
	return nil
}

// removeSubtree removes a node after its children and pads.
func (g *Graph) removeSubtree(id NodeID) {
	n := g.nodes[id]
	for _, child := range n.Children() {
		g.removeSubtree(child)
	}
	for _, pad := range n.Pads() {
		g.removePad(pad)
	}

	if parent, ok := g.Node(n.parent); ok {
		parent.children = removeID(parent.children, id)
	}
	delete(g.nodeWatch, id)
	g.nodes[id] = nil
}

// generateName returns "<factory><n>" from a per-factory counter, skipping names taken among siblings.
func (g *Graph) generateName(parent NodeID, factoryName string) string {
	for {
		n := g.nameSeq[factoryName]
		g.nameSeq[factoryName] = n + 1
		name := fmt.Sprintf("%s%d", factoryName, n)
		_, child := g.child(parent, name)
		_, pad := g.padByName(parent, name)
		if !child && !pad {
			return name
		}
	}
}

// validateName rejects names that cannot be addressed by path.
func validateName(name string) error {
	if name == "" || strings.Contains(name, PathSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// removeID returns ids without id, preserving order.
func removeID[T comparable](ids []T, id T) []T {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
