package compiler

import (
	"fmt"
	"strings"

	"github.com/roach88/mdgen/internal/cim"
)

// Validation error codes (E100-E199)
const (
	ErrNoEntities          = "E101" // model declares no entities
	ErrEntityNameEmpty     = "E102" // entity name is required
	ErrDuplicateEntity     = "E103" // entity names must be unique
	ErrAttributeIncomplete = "E104" // attribute name and type are required
	ErrRelationshipEndless = "E105" // relationship source and target are required
	ErrUnknownEntity       = "E106" // relationship names an undeclared entity
	ErrInvalidMultiplicity = "E107" // multiplicity outside 1, 1..*, 0..1, 0..*
	ErrDuplicateAttribute  = "E108" // attribute names must be unique per entity
)

// ValidationError represents a model validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a model against the structural rules.
// Returns all errors found (does not fail-fast).
//
// Unknown attribute types and relationship kinds are accepted: the
// platform mappings fall back to their defaults for them.
func Validate(m *cim.Model) []ValidationError {
	var errs []ValidationError

	// E101: at least one entity
	if len(m.Entities) == 0 {
		errs = append(errs, ValidationError{
			Field:   "entities",
			Message: "model must declare at least one entity",
			Code:    ErrNoEntities,
		})
	}

	declared := make(map[string]bool, len(m.Entities))
	for i, e := range m.Entities {
		field := fmt.Sprintf("entities[%d]", i)

		// E102: entity name
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "entity name is required",
				Code:    ErrEntityNameEmpty,
			})
		} else if declared[e.Name] {
			// E103: duplicate entity
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate entity %q", e.Name),
				Code:    ErrDuplicateEntity,
			})
		}
		declared[e.Name] = true

		errs = append(errs, validateAttributes(field, e.Attributes)...)
	}

	for i, r := range m.Relationships {
		errs = append(errs, validateRelationship(fmt.Sprintf("relationships[%d]", i), r, declared)...)
	}

	return errs
}

func validateAttributes(entityField string, attrs []cim.Attribute) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(attrs))

	for j, a := range attrs {
		field := fmt.Sprintf("%s.attributes[%d]", entityField, j)

		// E104: name and type
		if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(string(a.Type)) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "attribute name and type are required",
				Code:    ErrAttributeIncomplete,
			})
		}

		// E108: duplicate attribute
		if a.Name != "" && seen[a.Name] {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate attribute %q", a.Name),
				Code:    ErrDuplicateAttribute,
			})
		}
		seen[a.Name] = true
	}
	return errs
}

func validateRelationship(field string, r cim.Relationship, declared map[string]bool) []ValidationError {
	var errs []ValidationError

	ends := []struct {
		key, name string
	}{
		{"source", r.Source},
		{"target", r.Target},
	}
	for _, end := range ends {
		switch {
		case strings.TrimSpace(end.name) == "":
			// E105: both ends required
			errs = append(errs, ValidationError{
				Field:   field + "." + end.key,
				Message: end.key + " is required",
				Code:    ErrRelationshipEndless,
			})
		case !declared[end.name]:
			// E106: end names a declared entity
			errs = append(errs, ValidationError{
				Field:   field + "." + end.key,
				Message: fmt.Sprintf("unknown entity %q", end.name),
				Code:    ErrUnknownEntity,
			})
		}
	}

	mults := []struct {
		key string
		m   cim.Multiplicity
	}{
		{"source_multiplicity", r.SourceMultiplicity},
		{"target_multiplicity", r.TargetMultiplicity},
	}
	for _, mult := range mults {
		// E107: multiplicity token
		if !cim.ValidMultiplicities[mult.m] {
			errs = append(errs, ValidationError{
				Field:   field + "." + mult.key,
				Message: fmt.Sprintf("invalid multiplicity %q (want 1, 1..*, 0..1 or 0..*)", mult.m),
				Code:    ErrInvalidMultiplicity,
			})
		}
	}

	return errs
}
