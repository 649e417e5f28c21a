// If you are AI: This file rebuilds a graph from a document by replaying commands.
// Links are collected while reading and resolved in a second pass once every pad exists.

package graphfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"gsteditor/internal/core/command"
	"gsteditor/internal/core/factory"
	"gsteditor/internal/core/graph"
)

// ErrMalformed is returned when the token stream cannot be read to the end.
var ErrMalformed = errors.New("malformed graph document")

// Stats counts what a Read did.
type Stats struct {
	Elements   int `json:"elements"`
	Pads       int `json:"pads"` // pads added explicitly, always pads are not counted
	Properties int `json:"properties"`
	Links      int `json:"links"`
	Ignored    int `json:"ignored"` // unknown properties
	Skipped    int `json:"skipped"` // malformed or failing items
}

// link is a deferred source to sink connection.
type link struct {
	src  string
	sink string
}

// reader holds the state of one Read.
type reader struct {
	g     *graph.Graph
	l     graph.Listener
	dec   *xml.Decoder
	stats Stats
	links []link
	// current is the path of the element items apply to; valid is false
	// inside an element that could not be created.
	current string
	valid   bool
	stack   []frame
}

// frame saves the enclosing element while a nested one is open.
type frame struct {
	path  string
	valid bool
}

// Read tears down g and rebuilds it from the document in r.
// The listener is bound to every object the replayed commands create.
// Reading stops at a broken token stream; links collected so far are still resolved.
func Read(r io.Reader, g *graph.Graph, l graph.Listener) (Stats, error) {
	g.Clear()
	rd := &reader{g: g, l: l, dec: xml.NewDecoder(r), valid: true}

	readErr := rd.readAll()
	rd.resolveLinks()
	if readErr != nil {
		return rd.stats, fmt.Errorf("%w: %v", ErrMalformed, readErr)
	}
	return rd.stats, nil
}

// readAll consumes tokens until the end of the document.
func (rd *reader) readAll() error {
	for {
		tok, err := rd.dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := rd.start(t); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == tagElement {
				rd.closeElement()
			}
		}
	}
}

// start handles one opening tag.
func (rd *reader) start(t xml.StartElement) error {
	switch t.Name.Local {
	case tagPipeline:
		rd.current, rd.valid = "", true
		return nil
	case tagChildren:
		return nil
	case tagElement:
		rd.openElement(t)
		return nil
	case tagProperty:
		return rd.property(t)
	case tagPad:
		return rd.pad(t)
	}
	rd.stats.Skipped++
	return rd.dec.Skip()
}

// openElement adds the element and makes it current.
func (rd *reader) openElement(t xml.StartElement) {
	rd.stack = append(rd.stack, frame{path: rd.current, valid: rd.valid})
	factoryName, ok := attrValue(t, attrFactory)
	if !rd.valid || !ok {
		rd.stats.Skipped++
		rd.valid = false
		return
	}
	name, _ := attrValue(t, attrName)

	cmd := &command.AddElement{Factory: factoryName, Name: name, Parent: rd.current}
	ref, err := cmd.Execute(rd.g, rd.l)
	if err != nil {
		rd.stats.Skipped++
		rd.valid = false
		return
	}
	rd.stats.Elements++
	rd.current = rd.g.Path(ref.Node)
}

// closeElement restores the enclosing element.
func (rd *reader) closeElement() {
	if len(rd.stack) == 0 {
		return
	}
	top := rd.stack[len(rd.stack)-1]
	rd.stack = rd.stack[:len(rd.stack)-1]
	rd.current, rd.valid = top.path, top.valid
}

// property applies a property to the current element.
func (rd *reader) property(t xml.StartElement) error {
	text, err := rd.text(t)
	if err != nil {
		return err
	}
	name, ok := attrValue(t, attrName)
	if !rd.valid || !ok {
		rd.stats.Skipped++
		return nil
	}
	if !rd.hasProperty(name) {
		rd.stats.Ignored++
		return nil
	}

	cmd := &command.SetProperty{Element: rd.current, Property: name, Value: text}
	if _, err := cmd.Execute(rd.g, rd.l); err != nil {
		rd.stats.Skipped++
		return nil
	}
	rd.stats.Properties++
	return nil
}

// pad adds a missing pad and records the link of a linked source pad.
func (rd *reader) pad(t xml.StartElement) error {
	text, err := rd.text(t)
	if err != nil {
		return err
	}
	name, okName := attrValue(t, attrName)
	tpl, okTpl := attrValue(t, attrTemplate)
	linked, okLinked := attrValue(t, attrIsLinked)
	if !rd.valid || !okName || !okTpl || !okLinked {
		rd.stats.Skipped++
		return nil
	}

	path := graph.JoinPath(rd.current, name)
	id, err := rd.g.FindPad(path)
	if err != nil {
		cmd := &command.AddPad{Element: rd.current, Template: tpl, Name: name}
		ref, err := cmd.Execute(rd.g, rd.l)
		if err != nil {
			rd.stats.Skipped++
			return nil
		}
		rd.stats.Pads++
		id = ref.Pad
	}

	p, _ := rd.g.Pad(id)
	if linked == "1" && text != "" && p.Direction() == factory.DirectionSrc {
		rd.links = append(rd.links, link{src: path, sink: text})
	}
	return nil
}

// resolveLinks connects the collected pads in document order.
func (rd *reader) resolveLinks() {
	for _, lk := range rd.links {
		cmd := &command.Connect{Src: lk.src, Sink: lk.sink}
		if _, err := cmd.Execute(rd.g, rd.l); err != nil {
			rd.stats.Skipped++
			continue
		}
		rd.stats.Links++
	}
}

// hasProperty reports whether the current element's factory defines name.
func (rd *reader) hasProperty(name string) bool {
	id, err := rd.g.FindElement(rd.current)
	if err != nil {
		return false
	}
	n, _ := rd.g.Node(id)
	_, ok := n.Factory().Property(name)
	return ok
}

// text reads the character data of a leaf element, consuming its end tag.
func (rd *reader) text(t xml.StartElement) (string, error) {
	var leaf struct {
		Text string `xml:",chardata"`
	}
	if err := rd.dec.DecodeElement(&leaf, &t); err != nil {
		return "", err
	}
	return leaf.Text, nil
}

// attrValue returns the value of an unqualified attribute.
func attrValue(t xml.StartElement, name string) (string, bool) {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
