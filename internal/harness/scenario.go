package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/mdgen/internal/config"
)

// Scenario defines one pipeline scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Architecture is monolithic or microservices. Empty means monolithic.
	Architecture string `yaml:"architecture,omitempty"`

	// Model is the embedded conceptual model, in the same shape as a
	// YAML model file.
	Model yaml.Node `yaml:"model"`

	// ExpectError, when set, requires the pipeline to fail with an error
	// containing this text.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions validate the derived models.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion checks one element of a derived model.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Entity names the entity or component the element belongs to.
	Entity string `yaml:"entity,omitempty"`

	// Name selects an attribute, field or relationship by name.
	Name string `yaml:"name,omitempty"`

	// Target selects a frontend relationship by its target.
	Target string `yaml:"target,omitempty"`

	// Table is the expected table name (backend_table).
	Table string `yaml:"table,omitempty"`

	// Count is the expected number of services (service_count).
	Count int `yaml:"count,omitempty"`

	// Expect is a subset match against the element's exported dict.
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertPIMAttribute         = "pim_attribute"
	AssertPIMRelationship      = "pim_relationship"
	AssertBackendTable         = "backend_table"
	AssertBackendField         = "backend_field"
	AssertBackendRelationship  = "backend_relationship"
	AssertFrontendField        = "frontend_field"
	AssertFrontendRelationship = "frontend_relationship"
	AssertServiceCount         = "service_count"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadScenarios loads every *.yaml and *.yml file in dir, sorted by file
// name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Architecture {
	case "", config.Monolithic, config.Microservices:
	default:
		return fmt.Errorf("architecture %q must be %s or %s", s.Architecture, config.Monolithic, config.Microservices)
	}

	if s.Model.Kind == 0 {
		return fmt.Errorf("model is required")
	}

	if s.ExpectError == "" && len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required unless expect_error is set")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)

	case AssertPIMAttribute, AssertPIMRelationship,
		AssertBackendField, AssertBackendRelationship, AssertFrontendField:
		if a.Entity == "" {
			return fmt.Errorf("assertions[%d]: entity is required for %s", index, a.Type)
		}
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for %s", index, a.Type)
		}

	case AssertFrontendRelationship:
		if a.Entity == "" {
			return fmt.Errorf("assertions[%d]: entity is required for %s", index, a.Type)
		}
		if a.Target == "" {
			return fmt.Errorf("assertions[%d]: target is required for %s", index, a.Type)
		}

	case AssertBackendTable:
		if a.Entity == "" {
			return fmt.Errorf("assertions[%d]: entity is required for %s", index, a.Type)
		}
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: table is required for %s", index, a.Type)
		}

	case AssertServiceCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}

	default:
		return fmt.Errorf("assertions[%d]: unknown type %q", index, a.Type)
	}
	return nil
}
