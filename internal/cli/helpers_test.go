package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const clinicModel = `
entities:
  - name: Owner
    attributes:
      - {name: name, type: String}
  - name: Pet
    attributes:
      - {name: name, type: String}
      - {name: birth_date, type: Date}
relationships:
  - source: Owner
    target: Pet
    type: composition
    source_multiplicity: "1"
    target_multiplicity: "0..*"
`

const clinicCUE = `
entities: [
	{name: "Owner", attributes: [{name: "name", type: "String"}]},
	{name: "Pet", attributes: [{name: "name", type: "String"}, {name: "birth_date", type: "Date"}]},
]
relationships: [
	{source: "Owner", target: "Pet", type: "composition", source_multiplicity: "1", target_multiplicity: "0..*"},
]
`

// isolate moves the test into an empty directory so config discovery
// and MDGEN_* variables from the host cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{"MDGEN_PROJECT_NAME", "MDGEN_BACKEND_ARCHITECTURE", "MDGEN_AUTH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
