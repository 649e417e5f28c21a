// If you are AI: This file implements the REMOVE command.

package command

import "gsteditor/internal/core/graph"

// Remove deletes an element subtree or a single pad.
type Remove struct {
	Object string // ObjectElement or ObjectPad
	Path   string
}

// Kind returns KindRemove.
func (c *Remove) Kind() Kind { return KindRemove }

// Execute removes the object. Links of removed pads are broken first.
func (c *Remove) Execute(g *graph.Graph, _ graph.Listener) (graph.Ref, error) {
	if c.Object == ObjectPad {
		pad, err := g.FindPad(c.Path)
		if err != nil {
			return graph.Ref{}, failed(c, err)
		}
		if err := g.RemovePad(pad); err != nil {
			return graph.Ref{}, failed(c, err)
		}
		return graph.Ref{}, nil
	}

	node, err := g.FindElement(c.Path)
	if err != nil {
		return graph.Ref{}, failed(c, err)
	}
	if err := g.RemoveElement(node); err != nil {
		return graph.Ref{}, failed(c, err)
	}
	return graph.Ref{}, nil
}

// String returns "REMOVE <ELEMENT|PAD> <path>".
func (c *Remove) String() string {
	return join(KeywordRemove, c.Object, c.Path)
}

// parseRemove parses <ELEMENT|PAD> <path>.
func parseRemove(line string, args []string) (Command, error) {
	if err := expectCount(line, args, 2); err != nil {
		return nil, err
	}
	kind, err := objectType(line, args[0])
	if err != nil {
		return nil, err
	}
	return &Remove{Object: kind, Path: args[1]}, nil
}
