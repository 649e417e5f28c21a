// If you are AI: This file implements the Catalog, a name-keyed set of element factories.

package factory

import (
	"fmt"
	"sort"
)

// RootFactory is the factory name of every graph's root container.
const RootFactory = "pipeline"

// Catalog maps factory names to factories.
// It is read-mostly: factories are registered at startup and then only looked up.
type Catalog struct {
	factories map[string]*Factory
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]*Factory)}
}

// Register validates and adds a factory, replacing any factory with the same name.
func (c *Catalog) Register(f *Factory) error {
	if f == nil {
		return fmt.Errorf("register nil factory")
	}
	if err := f.Validate(); err != nil {
		return err
	}
	c.factories[f.Name] = f
	return nil
}

// Get returns the factory with the given name.
func (c *Catalog) Get(name string) (*Factory, bool) {
	f, ok := c.factories[name]
	return f, ok
}

// Names returns all factory names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered factories.
func (c *Catalog) Count() int {
	return len(c.factories)
}

// Factories returns all factories sorted by name.
func (c *Catalog) Factories() []*Factory {
	names := c.Names()
	out := make([]*Factory, 0, len(names))
	for _, name := range names {
		out = append(out, c.factories[name])
	}
	return out
}
