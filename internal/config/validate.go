package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	architectures      = []string{Monolithic, Microservices}
	backendFrameworks  = []string{"flask"}
	frontendFrameworks = []string{"react"}
	databases          = []string{"postgresql", "sqlite"}
	authModes          = []string{"", "jwt"}
	cicdTargets        = []string{"", "azure", "github"}
)

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks every field against its accepted values and returns the
// first violation.
func (p Project) Validate() error {
	if p.ProjectName == "" {
		return &ConfigError{Field: "project_name", Message: "must not be empty"}
	}

	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"auth", p.Auth, authModes},
		{"cicd", p.CICD, cicdTargets},
		{"backend.architecture", p.Backend.Architecture, architectures},
		{"backend.framework", p.Backend.Framework, backendFrameworks},
		{"backend.database.production", p.Backend.Database.Production, databases},
		{"backend.database.development", p.Backend.Database.Development, databases},
		{"frontend.framework", p.Frontend.Framework, frontendFrameworks},
	}
	for _, c := range checks {
		if !slices.Contains(c.allowed, c.value) {
			return &ConfigError{
				Field:   c.field,
				Message: fmt.Sprintf("unsupported value %q (want one of %s)", c.value, describe(c.allowed)),
			}
		}
	}
	return nil
}

func describe(allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return strings.Join(quoted, ", ")
}

// SanitizeName makes a project name safe to use as a directory name.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name)
}
