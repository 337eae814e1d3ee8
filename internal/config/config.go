// Package config loads the project configuration that selects the
// generation targets.
//
// Precedence, highest first: environment (MDGEN_*), config file,
// defaults. The loaded Project is validated once and then passed by
// value.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
	envPrefix    = "MDGEN"
)

// ConfigFileNames are tried in order in each directory during discovery.
var ConfigFileNames = []string{"mdgen.yaml", "mdgen.yml"}

// Architectures.
const (
	Monolithic    = "monolithic"
	Microservices = "microservices"
)

// Project is the effective project configuration.
type Project struct {
	ProjectName string   `mapstructure:"project_name" json:"project_name"`
	Auth        string   `mapstructure:"auth" json:"auth"`
	CICD        string   `mapstructure:"cicd" json:"cicd"`
	Backend     Backend  `mapstructure:"backend" json:"backend"`
	Frontend    Frontend `mapstructure:"frontend" json:"frontend"`
}

// Backend selects the server-side target.
type Backend struct {
	Architecture string   `mapstructure:"architecture" json:"architecture"`
	Framework    string   `mapstructure:"framework" json:"framework"`
	Database     Database `mapstructure:"database" json:"database"`
}

// Database names the engine per environment.
type Database struct {
	Production  string `mapstructure:"production" json:"production"`
	Development string `mapstructure:"development" json:"development"`
}

// Frontend selects the client-side target.
type Frontend struct {
	Framework string `mapstructure:"framework" json:"framework"`
}

// Microservices reports whether each entity becomes its own service.
func (p Project) Microservices() bool {
	return p.Backend.Architecture == Microservices
}

// Load discovers, reads and validates the configuration.
//
// Returns the project, the path to the config file (empty if none was
// found), and any error encountered.
func Load(explicitPath string) (Project, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitPath)
	if err != nil {
		return Project{}, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Project{}, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var p Project
	if err := v.Unmarshal(&p); err != nil {
		return Project{}, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	p.ProjectName = SanitizeName(p.ProjectName)
	if err := p.Validate(); err != nil {
		return Project{}, configPath, err
	}
	return p, configPath, nil
}

// Default returns the configuration used when nothing is set.
func Default() Project {
	return Project{
		ProjectName: "app",
		Backend: Backend{
			Architecture: Monolithic,
			Framework:    "flask",
			Database:     Database{Production: "sqlite", Development: "sqlite"},
		},
		Frontend: Frontend{Framework: "react"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("project_name", d.ProjectName)
	v.SetDefault("auth", d.Auth)
	v.SetDefault("cicd", d.CICD)

	v.SetDefault("backend.architecture", d.Backend.Architecture)
	v.SetDefault("backend.framework", d.Backend.Framework)
	v.SetDefault("backend.database.production", d.Backend.Database.Production)
	v.SetDefault("backend.database.development", d.Backend.Database.Development)

	v.SetDefault("frontend.framework", d.Frontend.Framework)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for mdgen.yaml or mdgen.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Stop at the repository root.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}
