package frontend

import (
	"gopkg.in/yaml.v3"

	"github.com/roach88/mdgen/internal/ir"
)

// ToDict returns the structural export:
//
//	{"components": [{"name", "fields", "relationships",
//	                 "listComponent", "formComponent", "detailComponent"}]}
func (m *Model) ToDict() ir.Object {
	components := make(ir.Array, 0, len(m.Components))
	for _, c := range m.Components {
		fields := make(ir.Array, 0, len(c.Fields))
		for _, f := range c.Fields {
			fields = append(fields, ir.NewObject(
				ir.O("name", ir.String(f.Name)),
				ir.O("type", ir.String(f.Type)),
			))
		}
		rels := make(ir.Array, 0, len(c.Relationships))
		for _, r := range c.Relationships {
			rels = append(rels, ir.NewObject(
				ir.O("target", ir.String(r.Target)),
				ir.O("type", ir.String(r.Type)),
			))
		}
		components = append(components, ir.NewObject(
			ir.O("name", ir.String(c.Name)),
			ir.O("fields", fields),
			ir.O("relationships", rels),
			ir.O("listComponent", ir.Bool(c.ListComponent)),
			ir.O("formComponent", ir.Bool(c.FormComponent)),
			ir.O("detailComponent", ir.Bool(c.DetailComponent)),
		))
	}
	return ir.NewObject(ir.O("components", components))
}

// ToYAML renders the export with keys in declaration order.
func (m *Model) ToYAML() ([]byte, error) {
	return yaml.Marshal(m)
}

// MarshalYAML implements yaml.Marshaler with the same keys as ToDict.
func (m *Model) MarshalYAML() (any, error) {
	return struct {
		Components []Component `yaml:"components"`
	}{m.Components}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Component) MarshalYAML() (any, error) {
	rels := c.Relationships
	if rels == nil {
		rels = []Relationship{}
	}
	return struct {
		Name            string         `yaml:"name"`
		Fields          []Field        `yaml:"fields"`
		Relationships   []Relationship `yaml:"relationships"`
		ListComponent   bool           `yaml:"listComponent"`
		FormComponent   bool           `yaml:"formComponent"`
		DetailComponent bool           `yaml:"detailComponent"`
	}{c.Name, c.Fields, rels, c.ListComponent, c.FormComponent, c.DetailComponent}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Field) MarshalYAML() (any, error) {
	return struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}{f.Name, f.Type}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Relationship) MarshalYAML() (any, error) {
	return struct {
		Target string `yaml:"target"`
		Type   string `yaml:"type"`
	}{r.Target, r.Type}, nil
}
