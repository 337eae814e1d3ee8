package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMonolithic(t *testing.T) {
	dir := isolate(t)
	model := writeFile(t, dir, "clinic.yaml", clinicModel)
	out := filepath.Join(dir, "out")

	stdout, err := execute(t, NewGenerateCommand(&RootOptions{Format: "text"}), model, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Generated")

	for _, rel := range []string{
		"backend/app/__init__.py",
		"backend/run.py",
		"backend/app/models/__init__.py",
		"backend/app/models/owner.py",
		"backend/app/models/pet.py",
		"backend/pim.yaml",
		"backend/psm.yaml",
		"frontend/src/components/OwnerComponent.jsx",
		"frontend/src/components/PetComponent.jsx",
		"frontend/psm.yaml",
	} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}

	pet, err := os.ReadFile(filepath.Join(out, "backend", "app", "models", "pet.py"))
	require.NoError(t, err)
	assert.Contains(t, string(pet), "owners.id")
}

func TestGenerateMicroservicesFromConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "mdgen.yaml", "project_name: clinic\nbackend:\n  architecture: microservices\n")
	model := writeFile(t, dir, "clinic.yaml", clinicModel)
	out := filepath.Join(dir, "out")

	stdout, err := execute(t, NewGenerateCommand(&RootOptions{Format: "json"}), model, "-o", out)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, resp.Data.Artifacts, "backend/Owner/run.py")
	assert.Contains(t, resp.Data.Artifacts, "backend/Pet/app/models/pet.py")
	assert.Len(t, resp.Data.ModelHash, 64)
	assert.Empty(t, resp.Data.RunID)

	run, err := os.ReadFile(filepath.Join(out, "backend", "Pet", "run.py"))
	require.NoError(t, err)
	assert.Contains(t, string(run), "5001")
}

func TestGenerateInvalidModelWritesNothing(t *testing.T) {
	dir := isolate(t)
	model := writeFile(t, dir, "bad.yaml", `
entities:
  - {name: A, attributes: []}
relationships:
  - {source: A, target: A, source_multiplicity: "0..1", target_multiplicity: "0..1"}
`)
	out := filepath.Join(dir, "out")

	_, err := execute(t, NewGenerateCommand(&RootOptions{Format: "text"}), model, "-o", out)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.NoDirExists(t, out)
}

func TestGenerateBadConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "mdgen.yaml", "backend:\n  architecture: serverless\n")
	model := writeFile(t, dir, "clinic.yaml", clinicModel)

	stdout, err := execute(t, NewGenerateCommand(&RootOptions{Format: "text"}), model)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error ["+ErrCodeConfig+"]")
}

func TestGenerateRecordsHistory(t *testing.T) {
	dir := isolate(t)
	model := writeFile(t, dir, "clinic.yaml", clinicModel)
	db := filepath.Join(dir, "runs.db")

	var runIDs []string
	for i := 0; i < 2; i++ {
		stdout, err := execute(t, NewGenerateCommand(&RootOptions{Format: "json"}), model, "-o", filepath.Join(dir, "out"), "--db", db)
		require.NoError(t, err)

		var resp struct {
			Data GenerateResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
		require.NotEmpty(t, resp.Data.RunID)
		runIDs = append(runIDs, resp.Data.RunID)
	}

	stdout, err := execute(t, NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db)
	require.NoError(t, err)

	var list struct {
		Status string       `json:"status"`
		Data   []RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, runIDs[0], list.Data[0].ID)
	assert.Equal(t, int64(1), list.Data[0].Seq)
	assert.Equal(t, int64(2), list.Data[1].Seq)
	assert.Equal(t, list.Data[0].ModelHash, list.Data[1].ModelHash)
	assert.Equal(t, 10, list.Data[0].ArtifactCount)
	assert.Equal(t, "app", list.Data[0].Project)

	stdout, err = execute(t, NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db, "--run", runIDs[1])
	require.NoError(t, err)
	var one struct {
		Data RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &one))
	require.Len(t, one.Data.Artifacts, 10)
	assert.Equal(t, "backend/app/__init__.py", one.Data.Artifacts[0].Path)

	stdout, err = execute(t, NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--model-hash", "nope")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No runs recorded.")
}

func TestHistoryErrors(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, NewHistoryCommand(&RootOptions{Format: "text"}), "--db", filepath.Join(dir, "missing.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	db := filepath.Join(dir, "runs.db")
	model := writeFile(t, dir, "clinic.yaml", clinicModel)
	_, err = execute(t, NewGenerateCommand(&RootOptions{Format: "text"}), model, "-o", filepath.Join(dir, "out"), "--db", db)
	require.NoError(t, err)

	stdout, err := execute(t, NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--run", "unknown")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "run not found: unknown")
}
