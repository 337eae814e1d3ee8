package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/mdgen/internal/ir"
)

// Snapshot captures everything a scenario produced as one ir.Object.
// Failed pipelines snapshot the error text instead of the models.
func Snapshot(scenarioName string, result *Result) ir.Object {
	if result.Err != nil || result.Output == nil {
		msg := "no output"
		if result.Err != nil {
			msg = result.Err.Error()
		}
		return ir.NewObject(
			ir.O("scenario_name", ir.String(scenarioName)),
			ir.O("error", ir.String(msg)),
		)
	}

	out := result.Output
	services := make(ir.Array, 0, len(out.Services))
	for _, s := range out.Services {
		services = append(services, ir.NewObject(
			ir.O("name", ir.String(s.Name)),
			ir.O("port", ir.Int(s.Port)),
			ir.O("backend", s.Backend.ToDict()),
		))
	}
	return ir.NewObject(
		ir.O("scenario_name", ir.String(scenarioName)),
		ir.O("pim", out.PIM.ToDict()),
		ir.O("backend", out.Backend.ToDict()),
		ir.O("frontend", out.Frontend.ToDict()),
		ir.O("services", services),
	)
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario cannot be executed. Snapshot
// mismatches fail the test through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := ir.MarshalCanonical(Snapshot(scenarioName, result))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
