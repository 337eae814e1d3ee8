package pim

import (
	"github.com/roach88/mdgen/internal/cim"
)

// Resolution is the outcome of resolving one end of a relationship.
type Resolution struct {
	Cardinality     Cardinality
	Nullable        bool
	NeedsForeignKey bool
}

// Resolve maps a multiplicity pair, ordered (this end, other end), to a
// resolution. It is called once per end: with the declared order for the
// source entity and with the operands swapped for the target entity.
//
//	this        other       cardinality    foreign key
//	1           1           one-to-one     yes
//	1..*        1..*        many-to-many   no
//	1|1..*      0..*|1..*   one-to-many    no
//	0..*|1..*   1|1..*      many-to-one    yes
//	0..*        0..*        many-to-many   no
//
// Rows are tried in order. Any pair involving 0..1 is rejected. A relationship
// is nullable when either end allows zero, except that a composed child
// never is.
func Resolve(this, other cim.Multiplicity, kind cim.RelationshipKind) (Resolution, error) {
	var res Resolution

	switch {
	case this == cim.One && other == cim.One:
		res.Cardinality = OneToOne
		res.NeedsForeignKey = true
	case this == cim.OneOrMore && other == cim.OneOrMore:
		// Also matches the one-to-many row, whose swap would not be its
		// inverse.
		res.Cardinality = ManyToMany
	case (this == cim.One || this == cim.OneOrMore) && isMany(other):
		res.Cardinality = OneToMany
	case isMany(this) && (other == cim.One || other == cim.OneOrMore):
		res.Cardinality = ManyToOne
		res.NeedsForeignKey = true
	case this == cim.ZeroOrMore && other == cim.ZeroOrMore:
		res.Cardinality = ManyToMany
	default:
		return Resolution{}, &UnsupportedMultiplicityError{This: this, Other: other}
	}

	res.Nullable = this.Optional() || other.Optional()
	if kind == cim.Composition {
		res.Nullable = false
	}
	return res, nil
}

func isMany(m cim.Multiplicity) bool {
	return m == cim.ZeroOrMore || m == cim.OneOrMore
}
