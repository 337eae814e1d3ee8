package cim

import "strings"

// AttributeType is one of the abstract attribute types. Unknown values are
// tolerated; each platform mapping falls back to its own default.
type AttributeType string

const (
	TypeString   AttributeType = "String"
	TypeInteger  AttributeType = "Integer"
	TypeDate     AttributeType = "Date"
	TypeBoolean  AttributeType = "Boolean"
	TypeFloat    AttributeType = "Float"
	TypeText     AttributeType = "Text"
	TypeDateTime AttributeType = "DateTime"
)

// AttributeTypes lists the known abstract types in declaration order.
var AttributeTypes = []AttributeType{
	TypeString, TypeInteger, TypeDate, TypeBoolean, TypeFloat, TypeText, TypeDateTime,
}

// RelationshipKind is the strength of a relationship.
type RelationshipKind string

const (
	Association RelationshipKind = "association"
	Aggregation RelationshipKind = "aggregation"
	Composition RelationshipKind = "composition"
)

// DefaultKind applies when a relationship omits its kind.
const DefaultKind = Association

// Multiplicity is a UML-style cardinality on one end of a relationship.
type Multiplicity string

const (
	One        Multiplicity = "1"
	OneOrMore  Multiplicity = "1..*"
	ZeroOrOne  Multiplicity = "0..1"
	ZeroOrMore Multiplicity = "0..*"
)

// DefaultMultiplicity applies when a relationship end omits its multiplicity.
const DefaultMultiplicity = One

// ValidMultiplicities defines the accepted multiplicity tokens.
var ValidMultiplicities = map[Multiplicity]bool{
	One:        true,
	OneOrMore:  true,
	ZeroOrOne:  true,
	ZeroOrMore: true,
}

// Optional reports whether the multiplicity allows zero occurrences.
func (m Multiplicity) Optional() bool {
	return strings.Contains(string(m), "0")
}

// Attribute is a named, typed property of an entity.
type Attribute struct {
	Name string        `json:"name" yaml:"name"`
	Type AttributeType `json:"type" yaml:"type"`
}

// Entity is a named concept with an ordered attribute list.
type Entity struct {
	Name       string      `json:"name" yaml:"name"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
}

// Relationship links a source entity to a target entity.
type Relationship struct {
	Source             string           `json:"source" yaml:"source"`
	Target             string           `json:"target" yaml:"target"`
	Kind               RelationshipKind `json:"type" yaml:"type"`
	SourceMultiplicity Multiplicity     `json:"source_multiplicity" yaml:"source_multiplicity"`
	TargetMultiplicity Multiplicity     `json:"target_multiplicity" yaml:"target_multiplicity"`
}

// SelfReferential reports whether both ends name the same entity.
func (r Relationship) SelfReferential() bool {
	return r.Source == r.Target
}

// Model is a complete conceptual model. Entity names are unique; every
// relationship end is expected to name one of them.
type Model struct {
	Entities      []Entity       `json:"entities" yaml:"entities"`
	Relationships []Relationship `json:"relationships" yaml:"relationships"`
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

// HasEntity reports whether an entity with the given name exists.
func (m *Model) HasEntity(name string) bool {
	_, ok := m.Entity(name)
	return ok
}

// EntityNames returns entity names in declaration order.
func (m *Model) EntityNames() []string {
	names := make([]string, len(m.Entities))
	for i, e := range m.Entities {
		names[i] = e.Name
	}
	return names
}

// RelationshipsOf returns every relationship touching the named entity, in
// declaration order.
func (m *Model) RelationshipsOf(name string) []Relationship {
	var rels []Relationship
	for _, r := range m.Relationships {
		if r.Source == name || r.Target == name {
			rels = append(rels, r)
		}
	}
	return rels
}
