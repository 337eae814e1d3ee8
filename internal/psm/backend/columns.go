package backend

import "github.com/roach88/mdgen/internal/cim"

// DefaultColumnType is used for any abstract type without a mapping.
const DefaultColumnType = "db.String(255)"

var columnTypes = map[cim.AttributeType]string{
	cim.TypeString:   "db.String(255)",
	cim.TypeInteger:  "db.Integer",
	cim.TypeDate:     "db.Date",
	cim.TypeBoolean:  "db.Boolean",
	cim.TypeFloat:    "db.Float",
	cim.TypeText:     "db.Text",
	cim.TypeDateTime: "db.DateTime",
}

// ColumnType maps an abstract attribute type to a column expression.
func ColumnType(t cim.AttributeType) string {
	if ct, ok := columnTypes[t]; ok {
		return ct
	}
	return DefaultColumnType
}

// TableName derives the table for an entity.
func TableName(entity string) string {
	return lower(entity) + "s"
}
