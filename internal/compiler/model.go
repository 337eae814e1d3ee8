package compiler

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/mdgen/internal/cim"
)

//go:embed schema/model.cue
var schemaSource string

// CompileCUE compiles a CUE model source. The top level must carry the
// entities and relationships fields; everything is checked against the
// #Model schema before extraction.
func CompileCUE(filename string, src []byte) (*cim.Model, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema/model.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", err)
	}

	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileModel(schema.LookupPath(cue.ParsePath("#Model")), v)
}

// CompileModel unifies v with the given #Model definition and extracts
// the model.
func CompileModel(def, v cue.Value) (*cim.Model, error) {
	for _, field := range []string{"entities", "relationships"} {
		if !v.LookupPath(cue.ParsePath(field)).Exists() {
			return nil, &CompileError{
				Field:   field,
				Message: field + " is required",
				Pos:     v.Pos(),
			}
		}
	}

	v = def.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	model := &cim.Model{}

	entities, err := list(v, "entities")
	if err != nil {
		return nil, err
	}
	for entities.Next() {
		e, err := compileEntity(entities.Value())
		if err != nil {
			return nil, err
		}
		model.Entities = append(model.Entities, e)
	}

	rels, err := list(v, "relationships")
	if err != nil {
		return nil, err
	}
	for rels.Next() {
		r, err := compileRelationship(rels.Value())
		if err != nil {
			return nil, err
		}
		model.Relationships = append(model.Relationships, r)
	}

	return model, nil
}

func compileEntity(v cue.Value) (cim.Entity, error) {
	var e cim.Entity

	name, err := stringField(v, "name")
	if err != nil {
		return e, err
	}
	e.Name = name

	attrs, err := list(v, "attributes")
	if err != nil {
		return e, err
	}
	for attrs.Next() {
		av := attrs.Value()
		attrName, err := stringField(av, "name")
		if err != nil {
			return e, err
		}
		attrType, err := stringField(av, "type")
		if err != nil {
			return e, err
		}
		e.Attributes = append(e.Attributes, cim.Attribute{
			Name: attrName,
			Type: cim.AttributeType(attrType),
		})
	}
	return e, nil
}

func compileRelationship(v cue.Value) (cim.Relationship, error) {
	var r cim.Relationship
	fields := []struct {
		name string
		dst  *string
	}{
		{"source", &r.Source},
		{"target", &r.Target},
		{"type", (*string)(&r.Kind)},
		{"source_multiplicity", (*string)(&r.SourceMultiplicity)},
		{"target_multiplicity", (*string)(&r.TargetMultiplicity)},
	}
	for _, f := range fields {
		s, err := stringField(v, f.name)
		if err != nil {
			return r, err
		}
		*f.dst = s
	}
	return r, nil
}

func list(v cue.Value, field string) (cue.Iterator, error) {
	lv := v.LookupPath(cue.ParsePath(field))
	if d, ok := lv.Default(); ok {
		lv = d
	}
	iter, err := lv.List()
	if err != nil {
		return iter, formatCUEError(err)
	}
	return iter, nil
}

// stringField reads a concrete string, resolving schema defaults.
func stringField(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &CompileError{
			Field:   field,
			Message: field + " is required",
			Pos:     v.Pos(),
		}
	}
	if d, ok := fv.Default(); ok {
		fv = d
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// CompileError is a source error, positioned when the source is CUE.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
