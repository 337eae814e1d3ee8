package backend

import (
	"strings"

	"github.com/roach88/mdgen/internal/pim"
)

type pairKey struct {
	entity string
	target string
}

type namedRelationship struct {
	name string
	typ  pim.Cardinality
}

// relationshipNames is the phase-one lookup. It is never written after
// buildNames returns.
type relationshipNames map[pairKey]namedRelationship

func buildNames(m *pim.Model) relationshipNames {
	names := make(relationshipNames)
	for _, e := range m.Entities {
		for _, r := range e.Relationships {
			name := r.Name
			if r.Type.Collection() {
				name += "s"
			}
			names[pairKey{entity: e.Name, target: r.Target}] = namedRelationship{name: name, typ: r.Type}
		}
	}
	return names
}

// Transform projects a PIM onto the backend. It cannot fail: unknown
// attribute types fall back to DefaultColumnType.
func Transform(m *pim.Model) *Model {
	names := buildNames(m)

	out := &Model{Entities: make([]Entity, 0, len(m.Entities))}
	for _, e := range m.Entities {
		out.Entities = append(out.Entities, buildEntity(e, names))
	}
	return out
}

func buildEntity(e pim.Entity, names relationshipNames) Entity {
	out := Entity{
		Name:      e.Name,
		TableName: TableName(e.Name),
		Fields:    make([]Field, 0, len(e.Attributes)),
	}
	for _, a := range e.Attributes {
		out.Fields = append(out.Fields, Field{
			Name:       a.Name,
			Type:       ColumnType(a.Type),
			PrimaryKey: a.PrimaryKey,
			ForeignKey: a.ForeignKey,
			Nullable:   a.Nullable,
		})
	}

	for _, r := range e.Relationships {
		own := names[pairKey{entity: e.Name, target: r.Target}]
		rel := Relationship{
			Name:   own.name,
			Target: r.Target,
			Type:   own.typ,
		}
		if reverse, ok := names[pairKey{entity: r.Target, target: e.Name}]; ok {
			rel.BackPopulates = reverse.name
		}
		out.Relationships = append(out.Relationships, rel)
	}
	return out
}

func lower(s string) string {
	return strings.ToLower(s)
}
