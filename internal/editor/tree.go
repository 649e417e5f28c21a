// If you are AI: This file renders the graph as a JSON-friendly tree and as indented text.

package editor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gsteditor/internal/core/graph"
)

// Tree is a snapshot of one element and its subtree.
type Tree struct {
	Name       string         `json:"name"`
	Factory    string         `json:"factory"`
	Path       string         `json:"path"`
	Properties []TreeProperty `json:"properties,omitempty"`
	Pads       []TreePad      `json:"pads,omitempty"`
	Children   []Tree         `json:"children,omitempty"`
}

// TreeProperty is one property value.
type TreeProperty struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Default bool   `json:"default"`
}

// TreePad is one pad and its peer.
type TreePad struct {
	Name      string `json:"name"`
	Template  string `json:"template"`
	Direction string `json:"direction"`
	Peer      string `json:"peer,omitempty"`
}

// Snapshot copies the graph into a Tree rooted at the pipeline.
func Snapshot(g *graph.Graph) Tree {
	return snapshot(g, g.Root())
}

// snapshot builds the subtree below id.
func snapshot(g *graph.Graph, id graph.NodeID) Tree {
	n, _ := g.Node(id)
	t := Tree{Name: n.Name(), Factory: n.Factory().Name, Path: g.Path(id)}
	for _, p := range g.Properties(id) {
		t.Properties = append(t.Properties, TreeProperty{Name: p.Spec.Name, Value: p.Value.String(), Default: p.Default})
	}
	for _, pid := range n.Pads() {
		p, _ := g.Pad(pid)
		pad := TreePad{Name: p.Name(), Template: p.Template().Name, Direction: p.Direction().String()}
		if p.IsLinked() {
			pad.Peer = g.PadPath(p.Peer())
		}
		t.Pads = append(t.Pads, pad)
	}
	for _, child := range n.Children() {
		t.Children = append(t.Children, snapshot(g, child))
	}
	return t
}

// WriteTree prints g one element per line, indented by depth, with
// non-default properties and pads underneath.
func WriteTree(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	g.Walk(g.Root(), func(n *graph.Node, depth int) bool {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(bw, "%s%s (%s)\n", indent, n.Name(), n.Factory().Name)
		for _, p := range g.Properties(n.ID()) {
			if !p.Default {
				fmt.Fprintf(bw, "%s  %s = %s\n", indent, p.Spec.Name, p.Value)
			}
		}
		for _, id := range n.Pads() {
			p, _ := g.Pad(id)
			peer := "-"
			if p.IsLinked() {
				peer = g.PadPath(p.Peer())
			}
			fmt.Fprintf(bw, "%s  [%s %s] -> %s\n", indent, p.Direction(), p.Name(), peer)
		}
		return true
	})
	return bw.Flush()
}
