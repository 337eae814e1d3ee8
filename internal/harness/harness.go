package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/mdgen/internal/compiler"
	"github.com/roach88/mdgen/internal/config"
	"github.com/roach88/mdgen/internal/generator"
)

// Run executes a scenario: it decodes and validates the embedded model,
// runs the pipeline for the scenario's architecture and checks every
// assertion. The returned error is reserved for scenarios the harness
// cannot execute; pipeline failures are reported through Result.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	cfg := config.Default()
	if scenario.Architecture != "" {
		cfg.Backend.Architecture = scenario.Architecture
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Output, result.Err = execute(scenario, cfg)

	slog.Debug("scenario executed",
		"scenario", scenario.Name,
		"architecture", cfg.Backend.Architecture,
		"failed", result.Err != nil,
	)

	if scenario.ExpectError != "" {
		switch {
		case result.Err == nil:
			result.AddError(fmt.Sprintf("expected error containing %q, pipeline succeeded", scenario.ExpectError))
		case !strings.Contains(result.Err.Error(), scenario.ExpectError):
			result.AddError(fmt.Sprintf("expected error containing %q, got %q", scenario.ExpectError, result.Err.Error()))
		}
		return result, nil
	}

	if result.Err != nil {
		result.AddError(fmt.Sprintf("unexpected error: %v", result.Err))
		return result, nil
	}

	for i, a := range scenario.Assertions {
		if err := CheckAssertion(result.Output, a); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return result, nil
}

func execute(scenario *Scenario, cfg config.Project) (*generator.Result, error) {
	m, err := compiler.DecodeYAML(&scenario.Model)
	if err != nil {
		return nil, err
	}
	if verrs := compiler.Validate(m); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i, v := range verrs {
			errs[i] = v
		}
		return nil, errors.Join(errs...)
	}
	return generator.Pipeline(m, cfg)
}
