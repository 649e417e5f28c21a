// If you are AI: This file renders a graph as a gst-launch pipeline description.

package codegen

import (
	"strings"

	"gsteditor/internal/core/factory"
	"gsteditor/internal/core/graph"
)

// Launch returns a gst-launch-1.0 description of g: one clause per element
// with its non-default properties, bins in parentheses, then one clause per link.
func Launch(g *graph.Graph) string {
	var clauses []string
	root, _ := g.Node(g.Root())
	for _, child := range root.Children() {
		clauses = append(clauses, elementClause(g, child))
	}
	clauses = append(clauses, linkClauses(g)...)
	return strings.Join(clauses, "  ")
}

// elementClause renders one element and, for containers, its children.
func elementClause(g *graph.Graph, id graph.NodeID) string {
	n, _ := g.Node(id)
	parts := []string{n.Factory().Name, "name=" + launchValue(n.Name())}
	for _, p := range g.Properties(id) {
		if !p.Default {
			parts = append(parts, p.Spec.Name+"="+launchValue(p.Value.String()))
		}
	}
	children := n.Children()
	if n.IsContainer() && len(children) > 0 {
		inner := make([]string, 0, len(children))
		for _, child := range children {
			inner = append(inner, elementClause(g, child))
		}
		parts = append(parts, "(", strings.Join(inner, "  "), ")")
	}
	return strings.Join(parts, " ")
}

// linkClauses renders "a.src ! b.sink" for every linked source pad in walk order.
func linkClauses(g *graph.Graph) []string {
	var links []string
	g.Walk(g.Root(), func(n *graph.Node, depth int) bool {
		for _, id := range n.Pads() {
			p, _ := g.Pad(id)
			if !p.IsLinked() || p.Direction() != factory.DirectionSrc {
				continue
			}
			peer, _ := g.Pad(p.Peer())
			peerNode, _ := g.Node(peer.Node())
			links = append(links, padRef(n.Name(), p.Name())+" ! "+padRef(peerNode.Name(), peer.Name()))
		}
		return true
	})
	return links
}

// padRef renders element.pad.
func padRef(element, pad string) string {
	return launchValue(element) + "." + pad
}

// launchValue quotes values the launch parser would split.
func launchValue(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"'!().,=") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
