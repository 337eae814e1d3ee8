package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mdgen/internal/cim"
)

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func validModel() *cim.Model {
	return &cim.Model{
		Entities: []cim.Entity{
			{Name: "Owner", Attributes: []cim.Attribute{{Name: "first_name", Type: cim.TypeString}}},
			{Name: "Pet", Attributes: []cim.Attribute{{Name: "name", Type: cim.TypeString}}},
		},
		Relationships: []cim.Relationship{{
			Source: "Owner", Target: "Pet", Kind: cim.Composition,
			SourceMultiplicity: cim.One, TargetMultiplicity: cim.OneOrMore,
		}},
	}
}

func TestValidateValidModel(t *testing.T) {
	assert.Empty(t, Validate(validModel()))
}

func TestValidateLenientTypesAndKinds(t *testing.T) {
	m := validModel()
	m.Entities[0].Attributes[0].Type = "Money"
	m.Relationships[0].Kind = "inheritance"
	assert.Empty(t, Validate(m))
}

func TestValidateNoEntities(t *testing.T) {
	errs := Validate(&cim.Model{})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNoEntities, errs[0].Code)
	assert.Equal(t, "entities", errs[0].Field)
}

func TestValidateEntityRules(t *testing.T) {
	m := validModel()
	m.Entities = append(m.Entities,
		cim.Entity{Name: ""},
		cim.Entity{Name: "Owner"},
		cim.Entity{Name: "Vet", Attributes: []cim.Attribute{
			{Name: "name", Type: cim.TypeString},
			{Name: "name", Type: cim.TypeText},
			{Name: "", Type: cim.TypeDate},
			{Name: "age"},
		}},
	)

	errs := Validate(m)
	assert.Equal(t, []string{
		ErrEntityNameEmpty,
		ErrDuplicateEntity,
		ErrDuplicateAttribute,
		ErrAttributeIncomplete,
		ErrAttributeIncomplete,
	}, codes(errs))
	assert.Equal(t, "entities[2].name", errs[0].Field)
	assert.Equal(t, "entities[3].name", errs[1].Field)
	assert.Equal(t, "entities[4].attributes[1].name", errs[2].Field)
}

func TestValidateRelationshipRules(t *testing.T) {
	m := validModel()
	m.Relationships = append(m.Relationships,
		cim.Relationship{Source: "", Target: "Pet", SourceMultiplicity: cim.One, TargetMultiplicity: cim.One},
		cim.Relationship{Source: "Owner", Target: "Vet", SourceMultiplicity: cim.One, TargetMultiplicity: cim.One},
		cim.Relationship{Source: "Owner", Target: "Pet", SourceMultiplicity: "2", TargetMultiplicity: "many"},
	)

	errs := Validate(m)
	assert.Equal(t, []string{
		ErrRelationshipEndless,
		ErrUnknownEntity,
		ErrInvalidMultiplicity,
		ErrInvalidMultiplicity,
	}, codes(errs))
	assert.Equal(t, "relationships[1].source", errs[0].Field)
	assert.Equal(t, "relationships[2].target", errs[1].Field)
	assert.Equal(t, "relationships[3].source_multiplicity", errs[2].Field)
	assert.Equal(t, "relationships[3].target_multiplicity", errs[3].Field)
}

func TestValidateCollectsAll(t *testing.T) {
	m := &cim.Model{
		Relationships: []cim.Relationship{{Source: "A", Target: "B", SourceMultiplicity: "x", TargetMultiplicity: cim.One}},
	}
	errs := Validate(m)
	assert.Equal(t, []string{ErrNoEntities, ErrUnknownEntity, ErrUnknownEntity, ErrInvalidMultiplicity}, codes(errs))
}

func TestValidationErrorFormat(t *testing.T) {
	err := ValidationError{Field: "entities", Message: "model must declare at least one entity", Code: ErrNoEntities}
	assert.Equal(t, "[E101] entities: model must declare at least one entity", err.Error())
}

func TestValidateAfterParse(t *testing.T) {
	m, err := ParseYAML([]byte(clinicYAML))
	require.NoError(t, err)
	assert.Empty(t, Validate(m))
}
