package backend

import "github.com/roach88/mdgen/internal/pim"

// Field is a column. Type is a backend column expression such as
// "db.String(255)".
type Field struct {
	Name       string
	Type       string
	PrimaryKey bool
	ForeignKey string
	Nullable   bool
}

// Relationship is an ORM relationship. BackPopulates is empty when the
// target declares no relationship back to this entity.
type Relationship struct {
	Name          string
	Target        string
	Type          pim.Cardinality
	BackPopulates string
}

// Entity is a table-backed model class.
type Entity struct {
	Name          string
	TableName     string
	Fields        []Field
	Relationships []Relationship
}

// Model is an ordered set of backend entities.
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

// Field returns the field with the given name.
func (e *Entity) Field(name string) (*Field, bool) {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i], true
		}
	}
	return nil, false
}

// Relationship returns the relationship with the given exported name.
func (e *Entity) Relationship(name string) (*Relationship, bool) {
	for i := range e.Relationships {
		if e.Relationships[i].Name == name {
			return &e.Relationships[i], true
		}
	}
	return nil, false
}

// ForeignKeys returns the fields that reference another table.
func (e *Entity) ForeignKeys() []Field {
	var out []Field
	for _, f := range e.Fields {
		if f.ForeignKey != "" {
			out = append(out, f)
		}
	}
	return out
}
