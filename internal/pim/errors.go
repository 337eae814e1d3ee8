package pim

import (
	"fmt"

	"github.com/roach88/mdgen/internal/cim"
)

// UnsupportedMultiplicityError is returned when a multiplicity pair falls
// outside the resolution table.
type UnsupportedMultiplicityError struct {
	This  cim.Multiplicity
	Other cim.Multiplicity
}

func (e *UnsupportedMultiplicityError) Error() string {
	return fmt.Sprintf("unsupported multiplicities: %q, %q", e.This, e.Other)
}

// MissingEntityError is returned when a relationship names an entity that
// the model does not declare.
type MissingEntityError struct {
	Relationship int    // index into cim.Model.Relationships
	Name         string // the unknown entity name
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("relationships[%d]: unknown entity %q", e.Relationship, e.Name)
}
