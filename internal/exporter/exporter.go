// Package exporter provides the SchemeSerializer contract and minimal
// YAML/JSON implementations of the Base24 output contract (§6): an ordered
// mapping of system="base24", name, author, variant, and a 24-entry
// palette of lowercase hex strings keyed base00..base17.
package exporter

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/b24cam/internal/colour"
	"gopkg.in/yaml.v3"
)

// SchemeSerializer renders a generated Scheme to its Base24 output
// contract.
type SchemeSerializer interface {
	Serialize(scheme colour.Scheme) ([]byte, error)
}

// document is the Base24 output contract's wire shape. Both encoding/json
// and yaml.v3 sort map keys lexicographically, which for "base00".."base17"
// already matches the canonical slot order, so no explicit ordering is
// needed to satisfy the contract.
type document struct {
	System  string            `yaml:"system" json:"system"`
	Name    string            `yaml:"name,omitempty" json:"name,omitempty"`
	Author  string            `yaml:"author,omitempty" json:"author,omitempty"`
	Variant string            `yaml:"variant" json:"variant"`
	Palette map[string]string `yaml:"palette" json:"palette"`
}

func buildDocument(scheme colour.Scheme) document {
	palette := make(map[string]string, len(scheme.Palette))
	for _, slot := range scheme.OrderedSlots() {
		if rgb, ok := scheme.Palette[slot]; ok {
			palette[slot] = rgb.Hex()
		}
	}
	return document{
		System:  "base24",
		Name:    scheme.Name,
		Author:  scheme.Author,
		Variant: string(scheme.Variant),
		Palette: palette,
	}
}

// YAML serializes a Scheme as YAML.
type YAML struct{}

func (YAML) Serialize(scheme colour.Scheme) ([]byte, error) {
	out, err := yaml.Marshal(buildDocument(scheme))
	if err != nil {
		return nil, fmt.Errorf("serialize scheme as yaml: %w", err)
	}
	return out, nil
}

// Deserialize reads a Base24 document back into its raw palette mapping,
// the input colour.Import expects (§6 Import symmetry).
func (YAML) Deserialize(data []byte) (map[string]string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml scheme: %w", err)
	}
	return doc.Palette, nil
}

// JSON serializes a Scheme as JSON, palette keys in canonical slot order.
type JSON struct{}

func (JSON) Serialize(scheme colour.Scheme) ([]byte, error) {
	out, err := json.MarshalIndent(buildDocument(scheme), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize scheme as json: %w", err)
	}
	return out, nil
}

// Deserialize reads a Base24 document back into its raw palette mapping.
func (JSON) Deserialize(data []byte) (map[string]string, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json scheme: %w", err)
	}
	return doc.Palette, nil
}
