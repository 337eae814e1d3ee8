package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mdgen/internal/psm/backend"
	"github.com/roach88/mdgen/internal/psm/frontend"
)

func pet() backend.Entity {
	return backend.Entity{
		Name:      "Pet",
		TableName: "pets",
		Fields: []backend.Field{
			{Name: "id", Type: "db.Integer", PrimaryKey: true},
			{Name: "name", Type: "db.String(255)", Nullable: true},
			{Name: "owner_id", Type: "db.Integer", ForeignKey: "owners.id"},
		},
		Relationships: []backend.Relationship{
			{Name: "owner", Target: "Owner", Type: "many-to-one", BackPopulates: "pets"},
		},
	}
}

func TestRenderFlaskModel(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	out, err := tmpl.Render("flask_model.py.tmpl", map[string]any{"Entity": pet()})
	require.NoError(t, err)

	want := `from app import db


class Pet(db.Model):
    __tablename__ = "pets"

    id = db.Column(db.Integer, primary_key=True, nullable=False)
    name = db.Column(db.String(255), nullable=True)
    owner_id = db.Column(db.Integer, db.ForeignKey("owners.id"), nullable=False)

    owner = db.relationship("Owner", back_populates="pets")

    def to_dict(self):
        return {
            "id": self.id,
            "name": self.name,
            "owner_id": self.owner_id,
        }
`
	assert.Equal(t, want, out)
}

func TestRenderFlaskModelOneToOne(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	e := pet()
	e.Relationships[0].Type = "one-to-one"
	e.Relationships[0].BackPopulates = ""

	out, err := tmpl.Render("flask_model.py.tmpl", map[string]any{"Entity": e})
	require.NoError(t, err)
	assert.Contains(t, out, `owner = db.relationship("Owner", uselist=False)`)
}

func TestRenderModelsInit(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	out, err := tmpl.Render("flask_models_init.py.tmpl", map[string]any{
		"Entities": []backend.Entity{{Name: "Owner"}, pet()},
	})
	require.NoError(t, err)
	assert.Equal(t, `
from app.models.owner import Owner
from app.models.pet import Pet

__all__ = ["Owner", "Pet"]
`, out)
}

func TestRenderReactComponent(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	c := frontend.Component{
		Name:            "Pet",
		Fields:          []frontend.Field{{Name: "name", Type: "text"}},
		Relationships:   []frontend.Relationship{{Target: "Owner", Type: "parentReference"}},
		FormComponent:   true,
		ListComponent:   true,
		DetailComponent: true,
	}
	out, err := tmpl.Render("react_component.jsx.tmpl", map[string]any{"Component": c})
	require.NoError(t, err)

	assert.Contains(t, out, `import OwnerParentReference from "./OwnerParentReference";`)
	assert.Contains(t, out, "export default function PetComponent(")
	assert.Contains(t, out, `<input name="name" type="text" onChange={update("name")} />`)
	assert.Contains(t, out, "<OwnerParentReference parent={form} />")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	_, err = tmpl.Render("django_model.py.tmpl", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown template "django_model.py.tmpl"`)
}

func TestRenderMissingKey(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	_, err = tmpl.Render("flask_run.py.tmpl", map[string]any{})
	require.Error(t, err)
}

func TestNames(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"flask_app.py.tmpl",
		"flask_model.py.tmpl",
		"flask_models_init.py.tmpl",
		"flask_run.py.tmpl",
		"react_component.jsx.tmpl",
	}, tmpl.Names())
}

func TestPascal(t *testing.T) {
	assert.Equal(t, "NestedTable", pascal("nestedTable"))
	assert.Equal(t, "", pascal(""))
}

var _ Renderer = (*Templates)(nil)
