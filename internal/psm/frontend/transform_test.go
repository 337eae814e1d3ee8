package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/mdgen/internal/cim"
	"github.com/roach88/mdgen/internal/ir"
	"github.com/roach88/mdgen/internal/pim"
)

func clinic(t *testing.T) *pim.Model {
	t.Helper()
	m, err := pim.Transform(&cim.Model{
		Entities: []cim.Entity{
			{Name: "Owner", Attributes: []cim.Attribute{
				{Name: "first_name", Type: cim.TypeString},
				{Name: "active", Type: cim.TypeBoolean},
			}},
			{Name: "Pet", Attributes: []cim.Attribute{
				{Name: "name", Type: cim.TypeString},
				{Name: "birth_date", Type: cim.TypeDate},
				{Name: "weight", Type: cim.TypeFloat},
			}},
			{Name: "Vet"},
		},
		Relationships: []cim.Relationship{
			{Source: "Owner", Target: "Pet", Kind: cim.Composition,
				SourceMultiplicity: cim.One, TargetMultiplicity: cim.OneOrMore},
			{Source: "Pet", Target: "Vet", Kind: cim.Aggregation,
				SourceMultiplicity: cim.ZeroOrMore, TargetMultiplicity: cim.One},
			{Source: "Vet", Target: "Owner", Kind: cim.Association,
				SourceMultiplicity: cim.ZeroOrMore, TargetMultiplicity: cim.ZeroOrMore},
		},
	})
	require.NoError(t, err)
	return m
}

func TestTransformWidgets(t *testing.T) {
	m := Transform(clinic(t))
	require.Len(t, m.Components, 3)

	owner, _ := m.Component("Owner")
	assert.Equal(t, []Relationship{
		{Target: "Pet", Type: WidgetNestedTable},
		{Target: "Vet", Type: WidgetNestedTable},
	}, owner.Relationships)

	pet, _ := m.Component("Pet")
	assert.Equal(t, []Relationship{
		{Target: "Owner", Type: WidgetParentReference},
		{Target: "Vet", Type: WidgetSelectDropdown},
	}, pet.Relationships)

	vet, _ := m.Component("Vet")
	assert.Equal(t, []Relationship{
		{Target: "Pet", Type: WidgetRelatedItem},
		{Target: "Owner", Type: WidgetNestedTable},
	}, vet.Relationships)
}

func TestTransformFields(t *testing.T) {
	m := Transform(clinic(t))

	pet, ok := m.Component("Pet")
	require.True(t, ok)
	assert.Equal(t, []Field{
		{Name: "id", Type: InputNumber},
		{Name: "name", Type: InputText},
		{Name: "birth_date", Type: InputDate},
		{Name: "weight", Type: InputText},
		{Name: "owner_id", Type: InputNumber},
		{Name: "vet_id", Type: InputNumber},
	}, pet.Fields)

	owner, _ := m.Component("Owner")
	f, ok := owner.Field("active")
	require.True(t, ok)
	assert.Equal(t, InputCheckbox, f.Type)
}

func TestTransformEnablesAllViews(t *testing.T) {
	for _, c := range Transform(clinic(t)).Components {
		assert.True(t, c.ListComponent, c.Name)
		assert.True(t, c.FormComponent, c.Name)
		assert.True(t, c.DetailComponent, c.Name)
	}
}

func TestWidget(t *testing.T) {
	tests := []struct {
		kind cim.RelationshipKind
		side pim.Side
		want string
	}{
		{cim.Composition, pim.SourceSide, WidgetNestedTable},
		{cim.Aggregation, pim.SourceSide, WidgetSelectDropdown},
		{cim.Composition, pim.TargetSide, WidgetParentReference},
		{cim.Aggregation, pim.TargetSide, WidgetRelatedItem},
		{cim.Association, pim.SourceSide, WidgetNestedTable},
		{cim.Association, pim.TargetSide, WidgetNestedTable},
		{"inheritance", pim.SourceSide, WidgetNestedTable},
		{"", "", WidgetNestedTable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Widget(tt.kind, tt.side), "%s/%s", tt.kind, tt.side)
	}
}

func TestInputKind(t *testing.T) {
	assert.Equal(t, InputText, InputKind(cim.TypeString))
	assert.Equal(t, InputNumber, InputKind(cim.TypeInteger))
	assert.Equal(t, InputDate, InputKind(cim.TypeDate))
	assert.Equal(t, InputCheckbox, InputKind(cim.TypeBoolean))
	assert.Equal(t, InputText, InputKind(cim.TypeDateTime))
	assert.Equal(t, InputText, InputKind("Money"))
}

func TestToDictCanonical(t *testing.T) {
	m, err := pim.Transform(&cim.Model{
		Entities: []cim.Entity{
			{Name: "Owner", Attributes: []cim.Attribute{{Name: "first_name", Type: cim.TypeString}}},
			{Name: "Pet", Attributes: []cim.Attribute{{Name: "name", Type: cim.TypeString}}},
		},
		Relationships: []cim.Relationship{{
			Source: "Owner", Target: "Pet", Kind: cim.Composition,
			SourceMultiplicity: cim.One, TargetMultiplicity: cim.OneOrMore,
		}},
	})
	require.NoError(t, err)

	got, err := ir.MarshalCanonical(Transform(m).ToDict())
	require.NoError(t, err)

	want := `{"components":[` +
		`{"detailComponent":true,"fields":[{"name":"id","type":"number"},{"name":"first_name","type":"text"}],` +
		`"formComponent":true,"listComponent":true,"name":"Owner",` +
		`"relationships":[{"target":"Pet","type":"nestedTable"}]},` +
		`{"detailComponent":true,"fields":[{"name":"id","type":"number"},{"name":"name","type":"text"},{"name":"owner_id","type":"number"}],` +
		`"formComponent":true,"listComponent":true,"name":"Pet",` +
		`"relationships":[{"target":"Owner","type":"parentReference"}]}]}`
	assert.Equal(t, want, string(got))
}

func TestToYAMLMatchesDict(t *testing.T) {
	m := Transform(clinic(t))

	out, err := m.ToYAML()
	require.NoError(t, err)

	var decoded any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	got, err := ir.MarshalCanonical(decoded)
	require.NoError(t, err)
	want, err := ir.MarshalCanonical(m.ToDict())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
	assert.Contains(t, string(out), "listComponent: true")
}
