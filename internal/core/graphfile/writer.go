// If you are AI: This file writes a graph as a nested XML document.
// Containers are written depth first; linked pads carry their peer's path as text.

package graphfile

import (
	"encoding/xml"
	"fmt"
	"io"

	"gsteditor/internal/core/graph"
)

// Document element and attribute names.
const (
	tagPipeline = "pipeline"
	tagChildren = "children"
	tagElement  = "element"
	tagProperty = "property"
	tagPad      = "pad"

	attrFactory  = "factory"
	attrName     = "name"
	attrTemplate = "template"
	attrIsLinked = "is_linked"
)

// Write encodes the graph to w.
func Write(w io.Writer, g *graph.Graph) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: tagPipeline}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if err := writeBody(enc, g, g.Root()); err != nil {
		return err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeBody writes the properties, pads and children of a node.
func writeBody(enc *xml.Encoder, g *graph.Graph, id graph.NodeID) error {
	for _, p := range g.Properties(id) {
		if err := textElement(enc, tagProperty, p.Value.String(), attr(attrName, p.Spec.Name)); err != nil {
			return err
		}
	}

	n, _ := g.Node(id)
	for _, padID := range n.Pads() {
		pad, _ := g.Pad(padID)
		linked, text := "0", ""
		if pad.IsLinked() {
			linked, text = "1", g.PadPath(pad.Peer())
		}
		err := textElement(enc, tagPad, text,
			attr(attrName, pad.Name()),
			attr(attrTemplate, pad.Template().Name),
			attr(attrIsLinked, linked))
		if err != nil {
			return err
		}
	}

	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	group := xml.StartElement{Name: xml.Name{Local: tagChildren}}
	if err := enc.EncodeToken(group); err != nil {
		return err
	}
	for _, child := range children {
		c, _ := g.Node(child)
		start := xml.StartElement{
			Name: xml.Name{Local: tagElement},
			Attr: []xml.Attr{attr(attrFactory, c.Factory().Name), attr(attrName, c.Name())},
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := writeBody(enc, g, child); err != nil {
			return fmt.Errorf("element %s: %w", g.Path(child), err)
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(group.End())
}

// textElement writes <tag attrs>text</tag>.
func textElement(enc *xml.Encoder, tag, text string, attrs ...xml.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: tag}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// attr builds an unqualified attribute.
func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
