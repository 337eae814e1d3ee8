package pim

import (
	"fmt"
	"strings"

	"github.com/roach88/mdgen/internal/cim"
)

// Transform derives the PIM for a whole model. Entities keep their CIM
// declaration order.
func Transform(m *cim.Model) (*Model, error) {
	if err := checkReferences(m); err != nil {
		return nil, err
	}

	out := &Model{Entities: make([]Entity, 0, len(m.Entities))}
	for _, e := range m.Entities {
		pe, err := transformEntity(m, e)
		if err != nil {
			return nil, err
		}
		out.Entities = append(out.Entities, pe)
	}
	return out, nil
}

// TransformPerEntity derives one single-entity PIM per CIM entity, in
// declaration order. Each result is identical to that entity's entry in
// Transform's output; relationships still name entities owned by other
// services.
func TransformPerEntity(m *cim.Model) ([]*Model, error) {
	if err := checkReferences(m); err != nil {
		return nil, err
	}

	out := make([]*Model, 0, len(m.Entities))
	for _, e := range m.Entities {
		pe, err := transformEntity(m, e)
		if err != nil {
			return nil, err
		}
		out = append(out, &Model{Entities: []Entity{pe}})
	}
	return out, nil
}

func checkReferences(m *cim.Model) error {
	for i, r := range m.Relationships {
		if !m.HasEntity(r.Source) {
			return &MissingEntityError{Relationship: i, Name: r.Source}
		}
		if !m.HasEntity(r.Target) {
			return &MissingEntityError{Relationship: i, Name: r.Target}
		}
	}
	return nil
}

func transformEntity(m *cim.Model, e cim.Entity) (Entity, error) {
	out := Entity{
		Name:       e.Name,
		Attributes: []Attribute{primaryKey()},
	}
	for _, a := range e.Attributes {
		out.Attributes = append(out.Attributes, Attribute{
			Name:     a.Name,
			Type:     a.Type,
			Nullable: true,
		})
	}

	for i, r := range m.Relationships {
		r = withDefaults(r)

		var (
			this, other cim.Multiplicity
			peer        string
			side        Side
		)
		switch {
		case r.Source == e.Name:
			// A self-loop is handled once, from the source end.
			this, other = r.SourceMultiplicity, r.TargetMultiplicity
			peer, side = r.Target, SourceSide
		case r.Target == e.Name:
			this, other = r.TargetMultiplicity, r.SourceMultiplicity
			peer, side = r.Source, TargetSide
		default:
			continue
		}

		res, err := Resolve(this, other, r.Kind)
		if err != nil {
			return Entity{}, fmt.Errorf("relationships[%d] %s -> %s: %w", i, r.Source, r.Target, err)
		}

		lower := strings.ToLower(peer)
		if res.NeedsForeignKey {
			out.Attributes = append(out.Attributes, Attribute{
				Name:       lower + "_id",
				Type:       cim.TypeInteger,
				ForeignKey: lower + "s.id",
				Nullable:   res.Nullable,
			})
		}
		out.Relationships = append(out.Relationships, Relationship{
			Name:   lower,
			Target: peer,
			Type:   res.Cardinality,
			Kind:   r.Kind,
			Side:   side,
		})
	}
	return out, nil
}

// withDefaults fills the kind and multiplicities a relationship omits.
func withDefaults(r cim.Relationship) cim.Relationship {
	if r.Kind == "" {
		r.Kind = cim.DefaultKind
	}
	if r.SourceMultiplicity == "" {
		r.SourceMultiplicity = cim.DefaultMultiplicity
	}
	if r.TargetMultiplicity == "" {
		r.TargetMultiplicity = cim.DefaultMultiplicity
	}
	return r
}
