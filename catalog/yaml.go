package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Wire shapes for the YAML catalog document.
type document struct {
	Base  string      `yaml:"base"`
	Types []typeEntry `yaml:"types"`
}

type typeEntry struct {
	Name    string       `yaml:"name"`
	Extends string       `yaml:"extends"`
	Schema  *markerEntry `yaml:"schema"`
}

type markerEntry struct {
	Order      int             `yaml:"order"`
	Types      []string        `yaml:"types"`
	Nodes      []string        `yaml:"nodes"`
	Inline     bool            `yaml:"inline"`
	TopLevel   bool            `yaml:"top-level"`
	Properties []propertyEntry `yaml:"properties"`
}

type propertyEntry struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
}

// LoadYAML decodes a catalog document. Unknown fields are rejected so a
// typo in a marker block fails loudly instead of silently dropping data.
func LoadYAML(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if doc.Base == "" {
		return nil, fmt.Errorf("catalog: missing base step type")
	}
	types := make([]*Type, 0, len(doc.Types))
	seen := make(map[string]struct{}, len(doc.Types))
	for _, te := range doc.Types {
		if te.Name == "" {
			return nil, fmt.Errorf("catalog: type entry without a name")
		}
		if _, dup := seen[te.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate type %q", te.Name)
		}
		seen[te.Name] = struct{}{}
		t := &Type{Name: te.Name, Extends: te.Extends}
		if te.Schema != nil {
			m := &Marker{
				Order:    te.Schema.Order,
				Types:    te.Schema.Types,
				Nodes:    te.Schema.Nodes,
				Inline:   te.Schema.Inline,
				TopLevel: te.Schema.TopLevel,
			}
			for _, pe := range te.Schema.Properties {
				m.Properties = append(m.Properties, Property{
					Name:     pe.Name,
					Type:     pe.Type,
					Required: pe.Required,
				})
			}
			t.Marker = m
		}
		types = append(types, t)
	}
	return New(doc.Base, types...), nil
}

// LoadFile reads and decodes a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadYAML(data)
}
