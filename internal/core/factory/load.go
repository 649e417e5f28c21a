// If you are AI: This file loads extra factory definitions from YAML files.
// Files are matched with a doublestar glob and decoded strictly.

package factory

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPattern matches every YAML file below the catalog directory.
const DefaultPattern = "**/*.yaml"

// fileDef is the YAML shape of a catalog file.
type fileDef struct {
	Factories []factoryDef `yaml:"factories"`
}

type factoryDef struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Container   bool          `yaml:"container,omitempty"`
	Templates   []templateDef `yaml:"templates,omitempty"`
	Properties  []propertyDef `yaml:"properties,omitempty"`
}

type templateDef struct {
	Name      string `yaml:"name"`
	Direction string `yaml:"direction"`
	Presence  string `yaml:"presence,omitempty"`
	Caps      string `yaml:"caps,omitempty"`
}

type propertyDef struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Default     string   `yaml:"default,omitempty"`
	Min         float64  `yaml:"min,omitempty"`
	Max         float64  `yaml:"max,omitempty"`
	Choices     []string `yaml:"choices,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// LoadDir registers every factory defined in files under dir matching pattern.
// Returns the names of the files that were loaded.
func LoadDir(c *Catalog, dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return LoadFS(c, os.DirFS(dir), pattern)
}

// LoadFS is LoadDir over an arbitrary file system.
func LoadFS(c *Catalog, fsys fs.FS, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("match catalog files: %w", err)
	}

	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog file %s: %w", name, err)
		}
		factories, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", name, err)
		}
		for _, f := range factories {
			if err := c.Register(f); err != nil {
				return nil, fmt.Errorf("catalog file %s: %w", name, err)
			}
		}
	}
	return matches, nil
}

// Decode parses one YAML catalog document into factories.
// Unknown fields are rejected.
func Decode(data []byte) ([]*Factory, error) {
	var def fileDef
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	factories := make([]*Factory, 0, len(def.Factories))
	for _, fd := range def.Factories {
		f, err := fd.build()
		if err != nil {
			return nil, err
		}
		factories = append(factories, f)
	}
	return factories, nil
}

// build converts a YAML definition into a Factory.
func (fd factoryDef) build() (*Factory, error) {
	f := &Factory{Name: fd.Name, Description: fd.Description, Container: fd.Container}
	for _, td := range fd.Templates {
		dir, err := ParseDirection(td.Direction)
		if err != nil {
			return nil, fmt.Errorf("factory %s template %s: %w", fd.Name, td.Name, err)
		}
		presence, err := ParsePresence(td.Presence)
		if err != nil {
			return nil, fmt.Errorf("factory %s template %s: %w", fd.Name, td.Name, err)
		}
		caps := td.Caps
		if caps == "" {
			caps = capsAny
		}
		f.Templates = append(f.Templates, PadTemplate{Name: td.Name, Direction: dir, Presence: presence, Caps: caps})
	}
	for _, pd := range fd.Properties {
		typ, err := ParsePropType(pd.Type)
		if err != nil {
			return nil, fmt.Errorf("factory %s property %s: %w", fd.Name, pd.Name, err)
		}
		f.Properties = append(f.Properties, PropertySpec{
			Name:        pd.Name,
			Type:        typ,
			Default:     pd.Default,
			Min:         pd.Min,
			Max:         pd.Max,
			Choices:     pd.Choices,
			Description: pd.Description,
		})
	}
	return f, f.Validate()
}
