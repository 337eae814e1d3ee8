package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mdgen/internal/cim"
	"github.com/roach88/mdgen/internal/config"
	"github.com/roach88/mdgen/internal/generator"
)

func ownerPetOutput(t *testing.T) *generator.Result {
	t.Helper()
	m := &cim.Model{
		Entities: []cim.Entity{
			{Name: "Owner", Attributes: []cim.Attribute{{Name: "name", Type: cim.TypeString}}},
			{Name: "Pet", Attributes: []cim.Attribute{{Name: "age", Type: cim.TypeInteger}}},
		},
		Relationships: []cim.Relationship{
			{Source: "Owner", Target: "Pet", Kind: cim.Aggregation, SourceMultiplicity: cim.One, TargetMultiplicity: cim.ZeroOrMore},
		},
	}
	out, err := generator.Pipeline(m, config.Default())
	require.NoError(t, err)
	return out
}

func TestCheckAssertionPasses(t *testing.T) {
	out := ownerPetOutput(t)

	tests := []Assertion{
		{Type: AssertPIMAttribute, Entity: "Pet", Name: "owner_id", Expect: map[string]any{"nullable": true, "foreign_key": "owners.id"}},
		{Type: AssertPIMAttribute, Entity: "Owner", Name: "id", Expect: map[string]any{"primary_key": true, "foreign_key": nil}},
		{Type: AssertPIMRelationship, Entity: "Pet", Name: "owner", Expect: map[string]any{"type": "many-to-one"}},
		{Type: AssertBackendTable, Entity: "Owner", Table: "owners"},
		{Type: AssertBackendField, Entity: "Pet", Name: "age", Expect: map[string]any{"type": "db.Integer"}},
		{Type: AssertBackendRelationship, Entity: "Owner", Name: "pets", Expect: map[string]any{"back_populates": "owner"}},
		{Type: AssertFrontendField, Entity: "Pet", Name: "age", Expect: map[string]any{"type": "number"}},
		{Type: AssertFrontendRelationship, Entity: "Owner", Target: "Pet", Expect: map[string]any{"type": "selectDropdown"}},
		{Type: AssertFrontendRelationship, Entity: "Pet", Target: "Owner", Expect: map[string]any{"type": "relatedItem"}},
		{Type: AssertServiceCount, Count: 0},
	}
	for _, a := range tests {
		t.Run(a.Type+"/"+a.Entity+a.Name+a.Target, func(t *testing.T) {
			assert.NoError(t, CheckAssertion(out, a))
		})
	}
}

func TestCheckAssertionFailures(t *testing.T) {
	out := ownerPetOutput(t)

	tests := []struct {
		name      string
		assertion Assertion
		want      string
	}{
		{
			name:      "value mismatch",
			assertion: Assertion{Type: AssertPIMAttribute, Entity: "Pet", Name: "owner_id", Expect: map[string]any{"nullable": false}},
			want:      "nullable=true (want false)",
		},
		{
			name:      "missing field in dict",
			assertion: Assertion{Type: AssertPIMRelationship, Entity: "Pet", Name: "owner", Expect: map[string]any{"back_populates": "pets"}},
			want:      "back_populates missing",
		},
		{
			name:      "unknown element lists candidates",
			assertion: Assertion{Type: AssertBackendField, Entity: "Pet", Name: "owner"},
			want:      "[id age owner_id]",
		},
		{
			name:      "unknown entity",
			assertion: Assertion{Type: AssertFrontendField, Entity: "Vet", Name: "id"},
			want:      "no such entity",
		},
		{
			name:      "service count",
			assertion: Assertion{Type: AssertServiceCount, Count: 2},
			want:      "expected 2 services, got 0 services",
		},
		{
			name:      "unknown type",
			assertion: Assertion{Type: "final_state"},
			want:      "unknown assertion type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAssertion(out, tt.assertion)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckAssertionNoOutput(t *testing.T) {
	err := CheckAssertion(nil, Assertion{Type: AssertServiceCount})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pipeline output")
}
