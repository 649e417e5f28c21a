// If you are AI: This file resolves colon-separated paths to elements and pads.
// Paths are relative to the root: "bin:element" for elements, "bin:element:pad" for pads.

package graph

import (
	"fmt"
	"strings"
)

// PathSeparator separates path segments.
const PathSeparator = ":"

// RefKind says what kind of object a Ref points to.
type RefKind uint8

const (
	// RefNone is an empty reference.
	RefNone RefKind = iota
	// RefElement points to a node.
	RefElement
	// RefPad points to a pad.
	RefPad
)

// String returns the kind name.
func (k RefKind) String() string {
	switch k {
	case RefElement:
		return "element"
	case RefPad:
		return "pad"
	default:
		return "none"
	}
}

// Ref is a handle to an element or a pad.
type Ref struct {
	Kind RefKind
	Node NodeID
	Pad  PadID
}

// ElementRef returns a reference to a node.
func ElementRef(id NodeID) Ref { return Ref{Kind: RefElement, Node: id} }

// PadRef returns a reference to a pad.
func PadRef(id PadID) Ref { return Ref{Kind: RefPad, Pad: id} }

// Path returns the root-relative path of a node. The root's path is empty.
func (g *Graph) Path(id NodeID) string {
	var segments []string
	for id != g.root {
		n, ok := g.Node(id)
		if !ok {
			return ""
		}
		segments = append(segments, n.name)
		id = n.parent
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, PathSeparator)
}

// PadPath returns the root-relative path of a pad.
func (g *Graph) PadPath(id PadID) string {
	p, ok := g.Pad(id)
	if !ok {
		return ""
	}
	return JoinPath(g.Path(p.node), p.name)
}

// JoinPath appends a segment to a path, handling the empty root path.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + PathSeparator + name
}

// Lookup resolves a path to an element or pad. Child elements take
// precedence over pads; a pad can only be the last segment.
func (g *Graph) Lookup(path string) (Ref, error) {
	if path == "" {
		return ElementRef(g.root), nil
	}

	segments := strings.Split(path, PathSeparator)
	cur := g.root
	for i, seg := range segments {
		if child, ok := g.child(cur, seg); ok {
			cur = child
			continue
		}
		if i == len(segments)-1 {
			if pad, ok := g.padByName(cur, seg); ok {
				return PadRef(pad), nil
			}
		}
		return Ref{}, fmt.Errorf("%w: no element or pad %q in %q", ErrNotFound, path, g.displayPath(cur))
	}
	return ElementRef(cur), nil
}

// FindElement resolves a path that must name an element.
func (g *Graph) FindElement(path string) (NodeID, error) {
	ref, err := g.Lookup(path)
	if err != nil {
		return NoNode, err
	}
	if ref.Kind != RefElement {
		return NoNode, fmt.Errorf("%w: object %q is not an element", ErrWrongKind, path)
	}
	return ref.Node, nil
}

// FindPad resolves a path that must name a pad.
func (g *Graph) FindPad(path string) (PadID, error) {
	ref, err := g.Lookup(path)
	if err != nil {
		return NoPad, err
	}
	if ref.Kind != RefPad {
		return NoPad, fmt.Errorf("%w: object %q is not a pad", ErrWrongKind, path)
	}
	return ref.Pad, nil
}

// FindContainer resolves a path that must name a container element.
func (g *Graph) FindContainer(path string) (NodeID, error) {
	id, err := g.FindElement(path)
	if err != nil {
		return NoNode, err
	}
	if !g.nodes[id].IsContainer() {
		return NoNode, fmt.Errorf("%w: element %q cannot hold children", ErrNotContainer, path)
	}
	return id, nil
}

// ElementPaths lists element paths below the root in depth-first order.
// With containersOnly set, only containers are listed.
func (g *Graph) ElementPaths(containersOnly bool) []string {
	var paths []string
	g.Walk(g.root, func(n *Node, depth int) bool {
		if n.id != g.root && (!containersOnly || n.IsContainer()) {
			paths = append(paths, g.Path(n.id))
		}
		return true
	})
	return paths
}

// PadPaths lists pad paths of every element for which keep returns true.
// A nil keep lists all pads.
func (g *Graph) PadPaths(keep func(p *Pad) bool) []string {
	var paths []string
	g.Walk(g.root, func(n *Node, depth int) bool {
		for _, id := range n.pads {
			p := g.pads[id]
			if keep == nil || keep(p) {
				paths = append(paths, g.PadPath(id))
			}
		}
		return true
	})
	return paths
}

// child returns the child of parent with the given name.
func (g *Graph) child(parent NodeID, name string) (NodeID, bool) {
	n, ok := g.Node(parent)
	if !ok {
		return NoNode, false
	}
	for _, id := range n.children {
		if g.nodes[id].name == name {
			return id, true
		}
	}
	return NoNode, false
}

// padByName returns the pad of node with the given name.
func (g *Graph) padByName(node NodeID, name string) (PadID, bool) {
	n, ok := g.Node(node)
	if !ok {
		return NoPad, false
	}
	for _, id := range n.pads {
		if g.pads[id].name == name {
			return id, true
		}
	}
	return NoPad, false
}

// displayPath names a node in error messages, using the root name for the root.
func (g *Graph) displayPath(id NodeID) string {
	if id == g.root {
		return g.nodes[g.root].name
	}
	return g.Path(id)
}
