// If you are AI: This file defines the arena-backed pipeline graph.
// Nodes and pads live in slices indexed by stable IDs; relations are ID lookups.

package graph

import (
	"errors"

	"gsteditor/internal/core/factory"
)

// Sentinel errors for graph operations. They are wrapped with context.
var (
	ErrNotFound      = errors.New("not found")
	ErrWrongKind     = errors.New("wrong object kind")
	ErrNameTaken     = errors.New("name already taken")
	ErrNotContainer  = errors.New("not a container")
	ErrAlreadyLinked = errors.New("pad already linked")
	ErrNotLinked     = errors.New("pad not linked")
	ErrDirection     = errors.New("incompatible pad directions")
	ErrIncompatible  = errors.New("incompatible pad caps")
	ErrInvalidValue  = factory.ErrInvalidValue
	ErrStaticPad     = errors.New("always pads are managed by their element")
	ErrRoot          = errors.New("operation not allowed on the root")
)

// NodeID identifies a node. IDs are never reused within a graph.
type NodeID uint32

// PadID identifies a pad. IDs are never reused within a graph.
type PadID uint32

// NoNode and NoPad are the zero IDs and never refer to a live object.
const (
	NoNode NodeID = 0
	NoPad  PadID  = 0
)

// Node is an element in the graph. Fields are read through accessors;
// all mutation goes through Graph methods so invariants hold.
type Node struct {
	id       NodeID
	parent   NodeID
	name     string
	factory  *factory.Factory
	children []NodeID
	pads     []PadID
	props    map[string]factory.Value
}

// ID returns the node ID.
func (n *Node) ID() NodeID { return n.id }

// Parent returns the containing node, NoNode for the root.
func (n *Node) Parent() NodeID { return n.parent }

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Factory returns the factory the node was created from.
func (n *Node) Factory() *factory.Factory { return n.factory }

// IsContainer reports whether the node may hold children.
func (n *Node) IsContainer() bool { return n.factory.Container }

// Children returns a copy of the child IDs in insertion order.
func (n *Node) Children() []NodeID { return append([]NodeID(nil), n.children...) }

// Pads returns a copy of the pad IDs in creation order.
func (n *Node) Pads() []PadID { return append([]PadID(nil), n.pads...) }

// Pad is a connection point on a node.
type Pad struct {
	id       PadID
	node     NodeID
	name     string
	template factory.PadTemplate
	peer     PadID
}

// ID returns the pad ID.
func (p *Pad) ID() PadID { return p.id }

// Node returns the owning node.
func (p *Pad) Node() NodeID { return p.node }

// Name returns the pad name.
func (p *Pad) Name() string { return p.name }

// Direction returns the pad direction.
func (p *Pad) Direction() factory.Direction { return p.template.Direction }

// Template returns the template the pad was created from.
func (p *Pad) Template() factory.PadTemplate { return p.template }

// Peer returns the linked pad, NoPad if unlinked.
func (p *Pad) Peer() PadID { return p.peer }

// IsLinked reports whether the pad has a peer.
func (p *Pad) IsLinked() bool { return p.peer != NoPad }

// Graph is a live pipeline graph rooted at a single container.
// It is not safe for concurrent use; callers serialize access.
type Graph struct {
	catalog   *factory.Catalog
	nodes     []*Node // index is NodeID; removed slots are nil
	pads      []*Pad  // index is PadID; removed slots are nil
	root      NodeID
	nodeWatch map[NodeID]Listener
	padWatch  map[PadID]Listener
	nameSeq   map[string]int
}

// New creates a graph with an empty root container.
func New(catalog *factory.Catalog) *Graph {
	g := &Graph{
		catalog:   catalog,
		nodes:     []*Node{nil},
		pads:      []*Pad{nil},
		nodeWatch: make(map[NodeID]Listener),
		padWatch:  make(map[PadID]Listener),
		nameSeq:   make(map[string]int),
	}

	rootFactory, ok := catalog.Get(factory.RootFactory)
	if !ok {
		rootFactory = &factory.Factory{Name: factory.RootFactory, Container: true}
	}
	g.root = g.newNode(NoNode, rootFactory, factory.RootFactory)
	return g
}

// Catalog returns the factory catalog the graph creates elements from.
func (g *Graph) Catalog() *factory.Catalog { return g.catalog }

// Root returns the root container ID.
func (g *Graph) Root() NodeID { return g.root }

// Node returns the live node with the given ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if int(id) >= len(g.nodes) || g.nodes[id] == nil {
		return nil, false
	}
	return g.nodes[id], true
}

// Pad returns the live pad with the given ID.
func (g *Graph) Pad(id PadID) (*Pad, bool) {
	if int(id) >= len(g.pads) || g.pads[id] == nil {
		return nil, false
	}
	return g.pads[id], true
}

// NodeCount returns the number of live nodes, including the root.
func (g *Graph) NodeCount() int {
	count := 0
	for _, n := range g.nodes {
		if n != nil {
			count++
		}
	}
	return count
}

// Walk visits nodes depth first starting at id, parents before children.
// Returning false from fn skips the node's subtree.
func (g *Graph) Walk(id NodeID, fn func(n *Node, depth int) bool) {
	g.walk(id, 0, fn)
}

// walk is the recursive step of Walk.
func (g *Graph) walk(id NodeID, depth int, fn func(n *Node, depth int) bool) {
	n, ok := g.Node(id)
	if !ok || !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		g.walk(child, depth+1, fn)
	}
}

// Clear removes every element below the root. Listeners hear about each pad.
func (g *Graph) Clear() {
	root := g.nodes[g.root]
	for _, child := range root.Children() {
		g.removeSubtree(child)
	}
	g.nameSeq = make(map[string]int)
}

// newNode allocates a node in the arena and attaches it to parent.
func (g *Graph) newNode(parent NodeID, f *factory.Factory, name string) NodeID {
	id := NodeID(len(g.nodes))
	n := &Node{id: id, parent: parent, name: name, factory: f, props: make(map[string]factory.Value)}
	g.nodes = append(g.nodes, n)
	if p, ok := g.Node(parent); ok {
		p.children = append(p.children, id)
	}
	return id
}

// newPad allocates a pad in the arena and attaches it to node.
func (g *Graph) newPad(node NodeID, tpl factory.PadTemplate, name string) PadID {
	id := PadID(len(g.pads))
	g.pads = append(g.pads, &Pad{id: id, node: node, name: name, template: tpl})
	n := g.nodes[node]
	n.pads = append(n.pads, id)
	return id
}
