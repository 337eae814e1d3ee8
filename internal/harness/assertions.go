package harness

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/mdgen/internal/generator"
	"github.com/roach88/mdgen/internal/ir"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

// CheckAssertion evaluates one assertion against the pipeline output.
func CheckAssertion(out *generator.Result, a Assertion) error {
	if out == nil {
		return fmt.Errorf("%s: no pipeline output", a.Type)
	}

	switch a.Type {
	case AssertPIMAttribute:
		return assertElement(a, out.PIM.ToDict(), "entities", "attributes", "name", a.Name)
	case AssertPIMRelationship:
		return assertElement(a, out.PIM.ToDict(), "entities", "relationships", "name", a.Name)
	case AssertBackendField:
		return assertElement(a, out.Backend.ToDict(), "entities", "fields", "name", a.Name)
	case AssertBackendRelationship:
		return assertElement(a, out.Backend.ToDict(), "entities", "relationships", "name", a.Name)
	case AssertFrontendField:
		return assertElement(a, out.Frontend.ToDict(), "components", "fields", "name", a.Name)
	case AssertFrontendRelationship:
		return assertElement(a, out.Frontend.ToDict(), "components", "relationships", "target", a.Target)
	case AssertBackendTable:
		return assertBackendTable(out, a)
	case AssertServiceCount:
		if len(out.Services) != a.Count {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%d services", a.Count),
				Actual:   fmt.Sprintf("%d services", len(out.Services)),
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

func assertBackendTable(out *generator.Result, a Assertion) error {
	e, ok := out.Backend.Entity(a.Entity)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("entity %s", a.Entity),
			Actual:   "no such entity",
		}
	}
	if e.TableName != a.Table {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("table %q", a.Table),
			Actual:   fmt.Sprintf("table %q", e.TableName),
		}
	}
	return nil
}

// assertElement finds the owner named a.Entity in dict[top], then the
// element of its list whose key equals want, and subset-matches a.Expect.
func assertElement(a Assertion, dict ir.Object, top, list, key, want string) error {
	owner, ok := findByKey(dict[top], "name", a.Entity)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("entity %s", a.Entity),
			Actual:   "no such entity",
		}
	}
	elem, ok := findByKey(owner[list], key, want)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%s.%s with %s %q", a.Entity, list, key, want),
			Actual:   fmt.Sprintf("%s %v", key, listKeys(owner[list], key)),
		}
	}
	return matchSubset(a.Type, elem, a.Expect)
}

func findByKey(v ir.Value, key, want string) (ir.Object, bool) {
	arr, ok := v.(ir.Array)
	if !ok {
		return nil, false
	}
	for _, item := range arr {
		obj, ok := item.(ir.Object)
		if !ok {
			continue
		}
		if s, ok := obj[key].(ir.String); ok && string(s) == want {
			return obj, true
		}
	}
	return nil, false
}

func listKeys(v ir.Value, key string) []string {
	arr, _ := v.(ir.Array)
	keys := make([]string, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(ir.Object); ok {
			if s, ok := obj[key].(ir.String); ok {
				keys = append(keys, string(s))
			}
		}
	}
	return keys
}

// matchSubset compares each expected field with the actual element using
// canonical JSON, so YAML ints and ir.Int compare equal.
func matchSubset(typ string, actual ir.Object, expect map[string]any) error {
	fields := make([]string, 0, len(expect))
	for k := range expect {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	var mismatches []string
	for _, field := range fields {
		got, ok := actual[field]
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("%s missing", field))
			continue
		}
		wantJSON, err := ir.MarshalCanonical(expect[field])
		if err != nil {
			return fmt.Errorf("%s: expect.%s: %w", typ, field, err)
		}
		gotJSON, err := ir.MarshalCanonical(got)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		if !bytes.Equal(wantJSON, gotJSON) {
			mismatches = append(mismatches, fmt.Sprintf("%s=%s (want %s)", field, gotJSON, wantJSON))
		}
	}
	if len(mismatches) > 0 {
		return &AssertionError{
			Type:     typ,
			Expected: "all expected fields to match",
			Actual:   strings.Join(mismatches, ", "),
		}
	}
	return nil
}
