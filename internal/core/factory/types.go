// If you are AI: This file defines element factories, pad templates and property specs.
// The catalog plays the role of the media engine's element registry.

package factory

import (
	"fmt"
	"strings"
)

// Direction is the data flow direction of a pad.
type Direction uint8

const (
	// DirectionUnknown is the zero value and never valid on a template.
	DirectionUnknown Direction = iota
	// DirectionSrc pads produce data.
	DirectionSrc
	// DirectionSink pads consume data.
	DirectionSink
)

// String returns the lowercase direction name used in documents and YAML.
func (d Direction) String() string {
	switch d {
	case DirectionSrc:
		return "src"
	case DirectionSink:
		return "sink"
	default:
		return "unknown"
	}
}

// ParseDirection converts "src" or "sink" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "src", "source":
		return DirectionSrc, nil
	case "sink":
		return DirectionSink, nil
	}
	return DirectionUnknown, fmt.Errorf("unknown pad direction %q", s)
}

// Presence says when pads of a template exist.
type Presence uint8

const (
	// PresenceAlways pads are created together with the element.
	PresenceAlways Presence = iota
	// PresenceSometimes pads appear later, added explicitly in the editor.
	PresenceSometimes
	// PresenceRequest pads are created on request.
	PresenceRequest
)

// String returns the lowercase presence name.
func (p Presence) String() string {
	switch p {
	case PresenceAlways:
		return "always"
	case PresenceSometimes:
		return "sometimes"
	case PresenceRequest:
		return "request"
	default:
		return "unknown"
	}
}

// ParsePresence converts a presence name into a Presence.
func ParsePresence(s string) (Presence, error) {
	switch strings.ToLower(s) {
	case "", "always":
		return PresenceAlways, nil
	case "sometimes":
		return PresenceSometimes, nil
	case "request":
		return PresenceRequest, nil
	}
	return PresenceAlways, fmt.Errorf("unknown pad presence %q", s)
}

// PadTemplate describes the shape of pads an element can have.
// Name may contain a %u or %d pattern for sometimes and request pads.
type PadTemplate struct {
	Name      string
	Direction Direction
	Presence  Presence
	Caps      string // "ANY" or media types separated by ';'
}

// IsPattern reports whether the template name is a pad name pattern.
func (t PadTemplate) IsPattern() bool {
	return strings.Contains(t.Name, "%u") || strings.Contains(t.Name, "%d")
}

// PadName expands the template name pattern with the given index.
func (t PadTemplate) PadName(index int) string {
	name := strings.Replace(t.Name, "%u", fmt.Sprint(index), 1)
	return strings.Replace(name, "%d", fmt.Sprint(index), 1)
}

// MediaTypes returns the caps media types, or nil for ANY.
func (t PadTemplate) MediaTypes() []string {
	caps := strings.TrimSpace(t.Caps)
	if caps == "" || strings.EqualFold(caps, "ANY") {
		return nil
	}
	parts := strings.Split(caps, ";")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			types = append(types, p)
		}
	}
	return types
}

// CapsCompatible reports whether pads of the two templates may be linked.
// ANY is compatible with everything; otherwise the media types must intersect.
func CapsCompatible(a, b PadTemplate) bool {
	at, bt := a.MediaTypes(), b.MediaTypes()
	if at == nil || bt == nil {
		return true
	}
	for _, x := range at {
		for _, y := range bt {
			if x == y {
				return true
			}
		}
	}
	return false
}

// Factory describes one kind of element.
type Factory struct {
	Name        string
	Description string
	Container   bool
	Templates   []PadTemplate
	Properties  []PropertySpec
}

// Template returns the pad template with the given name.
func (f *Factory) Template(name string) (PadTemplate, bool) {
	for _, t := range f.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return PadTemplate{}, false
}

// Property returns the property spec with the given name.
func (f *Factory) Property(name string) (PropertySpec, bool) {
	for _, p := range f.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertySpec{}, false
}

// Validate checks that the factory definition is usable.
func (f *Factory) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("factory name is empty")
	}
	seen := make(map[string]bool)
	for _, t := range f.Templates {
		if t.Name == "" {
			return fmt.Errorf("factory %s: template name is empty", f.Name)
		}
		if t.Direction == DirectionUnknown {
			return fmt.Errorf("factory %s: template %s has no direction", f.Name, t.Name)
		}
		if t.Presence == PresenceAlways && t.IsPattern() {
			return fmt.Errorf("factory %s: always template %s cannot be a pattern", f.Name, t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("factory %s: duplicate template %s", f.Name, t.Name)
		}
		seen[t.Name] = true
	}
	props := make(map[string]bool)
	for _, p := range f.Properties {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("factory %s: %w", f.Name, err)
		}
		if props[p.Name] {
			return fmt.Errorf("factory %s: duplicate property %s", f.Name, p.Name)
		}
		props[p.Name] = true
	}
	return nil
}
