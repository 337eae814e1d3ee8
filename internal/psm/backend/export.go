package backend

import (
	"gopkg.in/yaml.v3"

	"github.com/roach88/mdgen/internal/ir"
)

// ToDict returns the structural export:
//
//	{"entities": [{"name", "table_name", "fields": [...], "relationships": [...]}]}
func (m *Model) ToDict() ir.Object {
	entities := make(ir.Array, 0, len(m.Entities))
	for _, e := range m.Entities {
		entities = append(entities, e.toDict())
	}
	return ir.NewObject(ir.O("entities", entities))
}

func (e Entity) toDict() ir.Object {
	fields := make(ir.Array, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, ir.NewObject(
			ir.O("name", ir.String(f.Name)),
			ir.O("type", ir.String(f.Type)),
			ir.O("primary_key", ir.Bool(f.PrimaryKey)),
			ir.O("foreign_key", ir.OptionalString(f.ForeignKey)),
			ir.O("nullable", ir.Bool(f.Nullable)),
		))
	}
	rels := make(ir.Array, 0, len(e.Relationships))
	for _, r := range e.Relationships {
		rels = append(rels, ir.NewObject(
			ir.O("name", ir.String(r.Name)),
			ir.O("target", ir.String(r.Target)),
			ir.O("type", ir.String(r.Type)),
			ir.O("back_populates", ir.OptionalString(r.BackPopulates)),
		))
	}
	return ir.NewObject(
		ir.O("name", ir.String(e.Name)),
		ir.O("table_name", ir.String(e.TableName)),
		ir.O("fields", fields),
		ir.O("relationships", rels),
	)
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

// MarshalYAML implements yaml.Marshaler.
func (e Entity) MarshalYAML() (any, error) {
	rels := e.Relationships
	if rels == nil {
		rels = []Relationship{}
	}
	return struct {
		Name          string         `yaml:"name"`
		TableName     string         `yaml:"table_name"`
		Fields        []Field        `yaml:"fields"`
		Relationships []Relationship `yaml:"relationships"`
	}{e.Name, e.TableName, e.Fields, rels}, nil
}

// MarshalYAML implements yaml.Marshaler; an empty foreign key renders as null.
func (f Field) MarshalYAML() (any, error) {
	return struct {
		Name       string  `yaml:"name"`
		Type       string  `yaml:"type"`
		PrimaryKey bool    `yaml:"primary_key"`
		ForeignKey *string `yaml:"foreign_key"`
		Nullable   bool    `yaml:"nullable"`
	}{f.Name, f.Type, f.PrimaryKey, optional(f.ForeignKey), f.Nullable}, nil
}

// MarshalYAML implements yaml.Marshaler; a missing back reference renders as null.
func (r Relationship) MarshalYAML() (any, error) {
	return struct {
		Name          string  `yaml:"name"`
		Target        string  `yaml:"target"`
		Type          string  `yaml:"type"`
		BackPopulates *string `yaml:"back_populates"`
	}{r.Name, r.Target, string(r.Type), optional(r.BackPopulates)}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
