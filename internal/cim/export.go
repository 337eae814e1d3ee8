package cim

import "github.com/roach88/mdgen/internal/ir"

// ToDict returns the model as an ir.Object with defaults already applied.
// Two models that compile to the same CIM produce the same dict and so
// the same model hash.
func (m *Model) ToDict() ir.Object {
	entities := make(ir.Array, 0, len(m.Entities))
	for _, e := range m.Entities {
		attrs := make(ir.Array, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs = append(attrs, ir.NewObject(
				ir.O("name", ir.String(a.Name)),
				ir.O("type", ir.String(a.Type)),
			))
		}
		entities = append(entities, ir.NewObject(
			ir.O("name", ir.String(e.Name)),
			ir.O("attributes", attrs),
		))
	}
	rels := make(ir.Array, 0, len(m.Relationships))
	for _, r := range m.Relationships {
		rels = append(rels, ir.NewObject(
			ir.O("source", ir.String(r.Source)),
			ir.O("target", ir.String(r.Target)),
			ir.O("type", ir.String(r.Kind)),
			ir.O("source_multiplicity", ir.String(r.SourceMultiplicity)),
			ir.O("target_multiplicity", ir.String(r.TargetMultiplicity)),
		))
	}
	return ir.NewObject(
		ir.O("entities", entities),
		ir.O("relationships", rels),
	)
}
