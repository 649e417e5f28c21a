// If you are AI: This file implements typed property access on elements.

package graph

import (
	"fmt"

	"gsteditor/internal/core/factory"
)

// PropertyEntry is one property of an element with its current value.
type PropertyEntry struct {
	Spec    factory.PropertySpec
	Value   factory.Value
	Default bool // value equals the spec default
}

// SetProperty parses text with the property spec and stores the value.
// On error the previous value is kept.
func (g *Graph) SetProperty(node NodeID, name, text string) error {
	n, spec, err := g.propertySpec(node, name)
	if err != nil {
		return err
	}
	v, err := spec.Parse(text)
	if err != nil {
		return fmt.Errorf("element %q: %w", g.displayPath(node), err)
	}
	n.props[name] = v
	return nil
}

// Property returns the current value of a property.
func (g *Graph) Property(node NodeID, name string) (factory.Value, error) {
	n, _, err := g.propertySpec(node, name)
	if err != nil {
		return factory.Value{}, err
	}
	return n.props[name], nil
}

// Properties returns every property of an element in factory order.
func (g *Graph) Properties(node NodeID) []PropertyEntry {
	n, ok := g.Node(node)
	if !ok {
		return nil
	}
	entries := make([]PropertyEntry, 0, len(n.factory.Properties))
	for _, spec := range n.factory.Properties {
		v := n.props[spec.Name]
		def, _ := spec.DefaultValue()
		entries = append(entries, PropertyEntry{Spec: spec, Value: v, Default: v.Equal(def)})
	}
	return entries
}

// propertySpec resolves the node and the spec of one of its properties.
func (g *Graph) propertySpec(node NodeID, name string) (*Node, factory.PropertySpec, error) {
	n, ok := g.Node(node)
	if !ok {
		return nil, factory.PropertySpec{}, fmt.Errorf("%w: node %d", ErrNotFound, node)
	}
	spec, ok := n.factory.Property(name)
	if !ok {
		return nil, factory.PropertySpec{}, fmt.Errorf("%w: element %q has no property %q", ErrNotFound, g.displayPath(node), name)
	}
	return n, spec, nil
}
