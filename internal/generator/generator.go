package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/roach88/mdgen/internal/config"
	"github.com/roach88/mdgen/internal/render"
)

// ErrNoGenerator is returned when no generator is registered for a key.
var ErrNoGenerator = errors.New("no generator registered")

// Artifact is one emitted file. Path is slash-separated and relative to
// the project root.
type Artifact struct {
	Path    string
	Content []byte
}

// Input is everything a generator may read.
type Input struct {
	Project config.Project
	Result  *Result
}

// Generator emits the files for one target.
type Generator interface {
	Name() string
	Generate(in Input) ([]Artifact, error)
}

// BackendKey is the registry key of a backend generator.
func BackendKey(framework, architecture string) string {
	return "backend:" + framework + "/" + architecture
}

// FrontendKey is the registry key of a frontend generator.
func FrontendKey(framework string) string {
	return "frontend:" + framework
}

// Registry maps keys to generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns a registry holding the built-in generators.
func NewRegistry(r render.Renderer) *Registry {
	reg := &Registry{generators: make(map[string]Generator)}
	reg.Register(BackendKey("flask", config.Monolithic), &FlaskMonolithic{renderer: r})
	reg.Register(BackendKey("flask", config.Microservices), &FlaskMicroservices{renderer: r})
	reg.Register(FrontendKey("react"), &React{renderer: r})
	return reg
}

// Register adds or replaces the generator for key.
func (r *Registry) Register(key string, g Generator) {
	r.generators[key] = g
}

// Lookup returns the generator for key.
func (r *Registry) Lookup(key string) (Generator, error) {
	g, ok := r.generators[key]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoGenerator, key)
	}
	return g, nil
}

// Keys lists registered keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.generators))
	for k := range r.generators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ForProject selects the backend and frontend generators named by the
// configuration.
func (r *Registry) ForProject(cfg config.Project) ([]Generator, error) {
	be, err := r.Lookup(BackendKey(cfg.Backend.Framework, cfg.Backend.Architecture))
	if err != nil {
		return nil, err
	}
	fe, err := r.Lookup(FrontendKey(cfg.Frontend.Framework))
	if err != nil {
		return nil, err
	}
	return []Generator{be, fe}, nil
}

// Generate runs every selected generator and concatenates their
// artifacts. The first failure aborts the run and nothing is returned.
func (r *Registry) Generate(in Input) ([]Artifact, error) {
	gens, err := r.ForProject(in.Project)
	if err != nil {
		return nil, err
	}

	var all []Artifact
	for _, g := range gens {
		slog.Info("generating", "generator", g.Name(), "project", in.Project.ProjectName)
		arts, err := g.Generate(in)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Name(), err)
		}
		slog.Debug("generator finished", "generator", g.Name(), "artifacts", len(arts))
		all = append(all, arts...)
	}
	return all, nil
}
