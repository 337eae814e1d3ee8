package frontend

import (
	"github.com/roach88/mdgen/internal/cim"
	"github.com/roach88/mdgen/internal/pim"
)

var inputKinds = map[cim.AttributeType]string{
	cim.TypeString:  InputText,
	cim.TypeInteger: InputNumber,
	cim.TypeDate:    InputDate,
	cim.TypeBoolean: InputCheckbox,
}

// InputKind maps an abstract attribute type to a form input. Unmapped
// types render as text.
func InputKind(t cim.AttributeType) string {
	if k, ok := inputKinds[t]; ok {
		return k
	}
	return InputText
}

type widgetKey struct {
	kind cim.RelationshipKind
	side pim.Side
}

var widgets = map[widgetKey]string{
	{cim.Composition, pim.SourceSide}: WidgetNestedTable,
	{cim.Aggregation, pim.SourceSide}: WidgetSelectDropdown,
	{cim.Composition, pim.TargetSide}: WidgetParentReference,
	{cim.Aggregation, pim.TargetSide}: WidgetRelatedItem,
}

// Widget picks the control for one end of a relationship. The owning end
// of a composition lists its children in a nested table and the owning
// end of an aggregation selects from a dropdown; the other ends link
// back to the owner. Associations and unknown kinds use a nested table.
func Widget(kind cim.RelationshipKind, side pim.Side) string {
	if w, ok := widgets[widgetKey{kind, side}]; ok {
		return w
	}
	return WidgetNestedTable
}

// Transform builds one component per PIM entity, in order.
func Transform(m *pim.Model) *Model {
	out := &Model{Components: make([]Component, 0, len(m.Entities))}
	for _, e := range m.Entities {
		c := Component{
			Name:            e.Name,
			Fields:          make([]Field, 0, len(e.Attributes)),
			ListComponent:   true,
			FormComponent:   true,
			DetailComponent: true,
		}
		for _, a := range e.Attributes {
			c.Fields = append(c.Fields, Field{Name: a.Name, Type: InputKind(a.Type)})
		}
		for _, r := range e.Relationships {
			c.Relationships = append(c.Relationships, Relationship{
				Target: r.Target,
				Type:   Widget(r.Kind, r.Side),
			})
		}
		out.Components = append(out.Components, c)
	}
	return out
}
