package pim

import (
	"gopkg.in/yaml.v3"

	"github.com/roach88/mdgen/internal/ir"
)

// ToDict returns the structural export:
//
//	{"entities": [{"name", "attributes": [...], "relationships": [...]}]}
//
// Relationship kind and side are not exported.
func (m *Model) ToDict() ir.Object {
	entities := make(ir.Array, 0, len(m.Entities))
	for _, e := range m.Entities {
		attrs := make(ir.Array, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs = append(attrs, ir.NewObject(
				ir.O("name", ir.String(a.Name)),
				ir.O("type", ir.String(a.Type)),
				ir.O("primary_key", ir.Bool(a.PrimaryKey)),
				ir.O("foreign_key", ir.OptionalString(a.ForeignKey)),
				ir.O("nullable", ir.Bool(a.Nullable)),
			))
		}
		rels := make(ir.Array, 0, len(e.Relationships))
		for _, r := range e.Relationships {
			rels = append(rels, ir.NewObject(
				ir.O("name", ir.String(r.Name)),
				ir.O("target", ir.String(r.Target)),
				ir.O("type", ir.String(r.Type)),
			))
		}
		entities = append(entities, ir.NewObject(
			ir.O("name", ir.String(e.Name)),
			ir.O("attributes", attrs),
			ir.O("relationships", rels),
		))
	}
	return ir.NewObject(ir.O("entities", entities))
}

// ToYAML renders the export with keys in declaration order.
func (m *Model) ToYAML() ([]byte, error) {
	return yaml.Marshal(m)
}

// MarshalYAML implements yaml.Marshaler with the same keys as ToDict.
func (m *Model) MarshalYAML() (any, error) {
	return struct {
		Entities []Entity `yaml:"entities"`
	}{m.Entities}, nil
}

// MarshalYAML implements yaml.Marshaler; nil relationships render as [].
func (e Entity) MarshalYAML() (any, error) {
	rels := e.Relationships
	if rels == nil {
		rels = []Relationship{}
	}
	return struct {
		Name          string         `yaml:"name"`
		Attributes    []Attribute    `yaml:"attributes"`
		Relationships []Relationship `yaml:"relationships"`
	}{e.Name, e.Attributes, rels}, nil
}

// MarshalYAML implements yaml.Marshaler; an empty foreign key renders as null.
func (a Attribute) MarshalYAML() (any, error) {
	var fk *string
	if a.ForeignKey != "" {
		fk = &a.ForeignKey
	}
	return struct {
		Name       string  `yaml:"name"`
		Type       string  `yaml:"type"`
		PrimaryKey bool    `yaml:"primary_key"`
		ForeignKey *string `yaml:"foreign_key"`
		Nullable   bool    `yaml:"nullable"`
	}{a.Name, string(a.Type), a.PrimaryKey, fk, a.Nullable}, nil
}

// MarshalYAML implements yaml.Marshaler, leaving out kind and side.
func (r Relationship) MarshalYAML() (any, error) {
	return struct {
		Name   string `yaml:"name"`
		Target string `yaml:"target"`
		Type   string `yaml:"type"`
	}{r.Name, r.Target, string(r.Type)}, nil
}
