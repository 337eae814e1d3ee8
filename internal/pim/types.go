package pim

import (
	"github.com/roach88/mdgen/internal/cim"
)

// Cardinality is the resolved shape of a relationship seen from one end.
type Cardinality string

const (
	OneToOne   Cardinality = "one-to-one"
	OneToMany  Cardinality = "one-to-many"
	ManyToOne  Cardinality = "many-to-one"
	ManyToMany Cardinality = "many-to-many"
)

// Inverse returns the cardinality seen from the opposite end.
func (c Cardinality) Inverse() Cardinality {
	switch c {
	case OneToMany:
		return ManyToOne
	case ManyToOne:
		return OneToMany
	default:
		return c
	}
}

// Collection reports whether this end refers to many related rows.
func (c Cardinality) Collection() bool {
	return c == OneToMany || c == ManyToMany
}

// Side records which end of the declared CIM relationship an entity sits on.
type Side string

const (
	SourceSide Side = "source"
	TargetSide Side = "target"
)

// Attribute is a column-level property of a PIM entity.
// ForeignKey is empty when the attribute references nothing.
type Attribute struct {
	Name       string
	Type       cim.AttributeType
	PrimaryKey bool
	ForeignKey string
	Nullable   bool
}

// Relationship is one entity's view of a resolved relationship.
type Relationship struct {
	Name   string
	Target string
	Type   Cardinality

	// Kind and Side carry the CIM strength and the end this entity sits
	// on. They are not part of the structural export; the frontend
	// transformer reads them to pick a widget.
	Kind cim.RelationshipKind
	Side Side
}

// Entity is a PIM entity. Attributes always start with the synthesized
// primary key.
type Entity struct {
	Name          string
	Attributes    []Attribute
	Relationships []Relationship
}

// Model is an ordered set of PIM entities.
type Model struct {
	Entities []Entity
}

// Entity returns the entity with the given name.
func (m *Model) Entity(name string) (*Entity, bool) {
	for i := range m.Entities {
		if m.Entities[i].Name == name {
			return &m.Entities[i], true
		}
	}
	return nil, false
}

// Attribute returns the attribute with the given name.
func (e *Entity) Attribute(name string) (*Attribute, bool) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i], true
		}
	}
	return nil, false
}

// Relationship returns the relationship with the given name.
func (e *Entity) Relationship(name string) (*Relationship, bool) {
	for i := range e.Relationships {
		if e.Relationships[i].Name == name {
			return &e.Relationships[i], true
		}
	}
	return nil, false
}

// primaryKey is prepended to every entity.
func primaryKey() Attribute {
	return Attribute{
		Name:       "id",
		Type:       cim.TypeInteger,
		PrimaryKey: true,
		Nullable:   false,
	}
}
