// If you are AI: This file implements the SET command.

package command

import "gsteditor/internal/core/graph"

// SetProperty assigns a property value parsed from text.
type SetProperty struct {
	Element  string
	Property string
	Value    string
}

// Kind returns KindSet.
func (c *SetProperty) Kind() Kind { return KindSet }

// Execute sets the property and returns the element.
func (c *SetProperty) Execute(g *graph.Graph, _ graph.Listener) (graph.Ref, error) {
	node, err := g.FindElement(c.Element)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	if err := g.SetProperty(node, c.Property, c.Value); err != nil {
		return graph.Ref{}, failed(c, err)
	}
	return graph.ElementRef(node), nil
}

// String returns "SET <element> <property> <value>".
func (c *SetProperty) String() string {
	return join(KeywordSet, c.Element, c.Property, c.Value)
}

// parseSet parses <element> <property> <value>.
func parseSet(line string, args []string) (Command, error) {
	if err := expectCount(line, args, 3); err != nil {
		return nil, err
	}
	return &SetProperty{Element: args[0], Property: args[1], Value: args[2]}, nil
}
