package frontend

// Input kinds.
const (
	InputText     = "text"
	InputNumber   = "number"
	InputDate     = "date"
	InputCheckbox = "checkbox"
)

// Widget kinds.
const (
	WidgetNestedTable     = "nestedTable"
	WidgetSelectDropdown  = "selectDropdown"
	WidgetParentReference = "parentReference"
	WidgetRelatedItem     = "relatedItem"
)

// Field is a form input bound to one attribute.
type Field struct {
	Name string
	Type string
}

// Relationship is a widget that presents a related entity.
type Relationship struct {
	Target string
	Type   string
}

// Component is the UI descriptor for one entity. The view flags are
// always set by Transform.
type Component struct {
	Name          string
	Fields        []Field
	Relationships []Relationship

	ListComponent   bool
	FormComponent   bool
	DetailComponent bool
}

// Model is an ordered set of components.
type Model struct {
	Components []Component
}

// Component returns the component with the given name.
func (m *Model) Component(name string) (*Component, bool) {
	for i := range m.Components {
		if m.Components[i].Name == name {
			return &m.Components[i], true
		}
	}
	return nil, false
}

// Field returns the field with the given name.
func (c *Component) Field(name string) (*Field, bool) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i], true
		}
	}
	return nil, false
}

// Relationship returns the widget for the given target.
func (c *Component) Relationship(target string) (*Relationship, bool) {
	for i := range c.Relationships {
		if c.Relationships[i].Target == target {
			return &c.Relationships[i], true
		}
	}
	return nil, false
}
