// If you are AI: This file implements the ADD ELEMENT and ADD PAD commands.

package command

import "gsteditor/internal/core/graph"

// AddElement creates an element from a factory inside a container.
// An empty Parent means the root container; an empty Name is generated.
type AddElement struct {
	Factory string
	Name    string
	Parent  string
}

// Kind returns KindAddElement.
func (c *AddElement) Kind() Kind { return KindAddElement }

// Execute creates the element and binds l to it.
func (c *AddElement) Execute(g *graph.Graph, l graph.Listener) (graph.Ref, error) {
	parent, err := g.FindContainer(c.Parent)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	id, err := g.AddElement(parent, c.Factory, c.Name, l)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	return graph.ElementRef(id), nil
}

// String returns "ADD ELEMENT <factory> [<name>] [TO <parent>]".
func (c *AddElement) String() string {
	words := []string{KeywordAdd, ObjectElement, c.Factory}
	if c.Name != "" {
		words = append(words, c.Name)
	}
	if c.Parent != "" {
		words = append(words, KeywordTo, c.Parent)
	}
	return join(words...)
}

// AddPad creates a pad on an element from one of its templates.
// An empty Name lets the template pick one.
type AddPad struct {
	Element  string
	Template string
	Name     string
}

// Kind returns KindAddPad.
func (c *AddPad) Kind() Kind { return KindAddPad }

// Execute creates the pad and binds l to it.
func (c *AddPad) Execute(g *graph.Graph, l graph.Listener) (graph.Ref, error) {
	node, err := g.FindElement(c.Element)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	id, err := g.AddPad(node, c.Template, c.Name, l)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	return graph.PadRef(id), nil
}

// String returns "ADD PAD TO <element> USING <template> [<name>]".
func (c *AddPad) String() string {
	words := []string{KeywordAdd, ObjectPad, KeywordTo, c.Element, KeywordUsing, c.Template}
	if c.Name != "" {
		words = append(words, c.Name)
	}
	return join(words...)
}

// parseAdd parses the arguments of ADD, starting with the object type.
func parseAdd(line string, args []string) (Command, error) {
	if len(args) < 1 {
		return nil, expectCount(line, args, 1)
	}
	kind, err := objectType(line, args[0])
	if err != nil {
		return nil, err
	}
	if kind == ObjectElement {
		return parseAddElement(line, args)
	}
	return parseAddPad(line, args)
}

// parseAddElement parses ELEMENT <factory> [<name>] [TO <parent>].
func parseAddElement(line string, args []string) (Command, error) {
	if err := expectCount(line, args, 2, 3, 4, 5); err != nil {
		return nil, err
	}
	c := &AddElement{Factory: args[1]}
	if len(args) == 3 || len(args) == 5 {
		c.Name = args[2]
	}
	if len(args) > 3 {
		if err := expectKeyword(line, args[len(args)-2], KeywordTo); err != nil {
			return nil, err
		}
		c.Parent = args[len(args)-1]
	}
	return c, nil
}

// parseAddPad parses PAD TO <element> USING <template> [<name>].
func parseAddPad(line string, args []string) (Command, error) {
	if err := expectCount(line, args, 5, 6); err != nil {
		return nil, err
	}
	if err := expectKeyword(line, args[1], KeywordTo); err != nil {
		return nil, err
	}
	if err := expectKeyword(line, args[3], KeywordUsing); err != nil {
		return nil, err
	}
	c := &AddPad{Element: args[2], Template: args[4]}
	if len(args) == 6 {
		c.Name = args[5]
	}
	return c, nil
}
