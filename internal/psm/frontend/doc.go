// Package frontend projects a PIM onto UI components: one component per
// entity with input kinds for its fields and a widget for each related
// entity.
package frontend
