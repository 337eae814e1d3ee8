package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "mdgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	chdir(t, dir)

	p, path, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), p)
	assert.False(t, p.Microservices())
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
project_name: " pet/clinic "
auth: jwt
cicd: github
backend:
  architecture: microservices
  framework: flask
  database:
    production: postgresql
    development: sqlite
frontend:
  framework: react
`)

	p, got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "pet_clinic", p.ProjectName)
	assert.Equal(t, "jwt", p.Auth)
	assert.Equal(t, "github", p.CICD)
	assert.True(t, p.Microservices())
	assert.Equal(t, "postgresql", p.Backend.Database.Production)
	assert.Equal(t, "sqlite", p.Backend.Database.Development)
}

func TestLoadDiscoversFileInParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeConfig(t, root, "project_name: clinic\n")

	nested := filepath.Join(root, "models", "v1")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	p, path, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "mdgen.yaml"), path)
	assert.Equal(t, "clinic", p.ProjectName)
	assert.Equal(t, Monolithic, p.Backend.Architecture)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "backend:\n  architecture: monolithic\n")
	t.Setenv("MDGEN_BACKEND_ARCHITECTURE", "microservices")

	p, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Microservices, p.Backend.Architecture)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadRejectsInvalidValue(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "backend:\n  framework: django\n")

	_, _, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "backend.framework", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Project)
		field  string
	}{
		{"empty name", func(p *Project) { p.ProjectName = "" }, "project_name"},
		{"auth", func(p *Project) { p.Auth = "basic" }, "auth"},
		{"cicd", func(p *Project) { p.CICD = "jenkins" }, "cicd"},
		{"architecture", func(p *Project) { p.Backend.Architecture = "serverless" }, "backend.architecture"},
		{"production db", func(p *Project) { p.Backend.Database.Production = "mysql" }, "backend.database.production"},
		{"development db", func(p *Project) { p.Backend.Database.Development = "" }, "backend.database.development"},
		{"frontend", func(p *Project) { p.Frontend.Framework = "vue" }, "frontend.framework"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)

			err := p.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "_my_file_name", SanitizeName(` /my\file\name `))
	assert.Equal(t, "clinic", SanitizeName("clinic"))
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
