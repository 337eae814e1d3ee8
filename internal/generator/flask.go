package generator

import (
	"fmt"
	"path"
	"strings"

	"github.com/roach88/mdgen/internal/config"
	"github.com/roach88/mdgen/internal/pim"
	"github.com/roach88/mdgen/internal/psm/backend"
	"github.com/roach88/mdgen/internal/render"
)

const backendRoot = "backend"

// FlaskMonolithic emits one Flask application holding every entity.
type FlaskMonolithic struct {
	renderer render.Renderer
}

func (*FlaskMonolithic) Name() string { return BackendKey("flask", config.Monolithic) }

func (g *FlaskMonolithic) Generate(in Input) ([]Artifact, error) {
	return flaskApp(g.renderer, in.Project, backendRoot, BasePort, in.Result.PIM, in.Result.Backend)
}

// FlaskMicroservices emits one Flask application per entity, each in its
// own directory and on its own port.
type FlaskMicroservices struct {
	renderer render.Renderer
}

func (*FlaskMicroservices) Name() string { return BackendKey("flask", config.Microservices) }

func (g *FlaskMicroservices) Generate(in Input) ([]Artifact, error) {
	if len(in.Result.Services) == 0 && len(in.Result.PIM.Entities) > 0 {
		return nil, fmt.Errorf("pipeline produced no services")
	}

	var all []Artifact
	for _, svc := range in.Result.Services {
		arts, err := flaskApp(g.renderer, in.Project, path.Join(backendRoot, svc.Name), svc.Port, svc.PIM, svc.Backend)
		if err != nil {
			return nil, fmt.Errorf("service %s: %w", svc.Name, err)
		}
		all = append(all, arts...)
	}
	return all, nil
}

type appContext struct {
	Name           string
	ProductionURI  string
	DevelopmentURI string
	JWT            bool
}

func flaskApp(r render.Renderer, cfg config.Project, root string, port int, p *pim.Model, be *backend.Model) ([]Artifact, error) {
	var arts []Artifact
	emit := func(rel, tmpl string, data any) error {
		out, err := r.Render(tmpl, data)
		if err != nil {
			return err
		}
		arts = append(arts, Artifact{Path: path.Join(root, rel), Content: []byte(out)})
		return nil
	}

	app := appContext{
		Name:           cfg.ProjectName,
		ProductionURI:  databaseURI(cfg.Backend.Database.Production, cfg.ProjectName),
		DevelopmentURI: databaseURI(cfg.Backend.Database.Development, cfg.ProjectName),
		JWT:            cfg.Auth == "jwt",
	}
	if err := emit("app/__init__.py", "flask_app.py.tmpl", app); err != nil {
		return nil, err
	}
	if err := emit("run.py", "flask_run.py.tmpl", map[string]any{"Port": port}); err != nil {
		return nil, err
	}
	if err := emit("app/models/__init__.py", "flask_models_init.py.tmpl", map[string]any{"Entities": be.Entities}); err != nil {
		return nil, err
	}
	for _, e := range be.Entities {
		rel := "app/models/" + strings.ToLower(e.Name) + ".py"
		if err := emit(rel, "flask_model.py.tmpl", map[string]any{"Entity": e}); err != nil {
			return nil, err
		}
	}

	pimYAML, err := p.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("pim yaml: %w", err)
	}
	psmYAML, err := be.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("psm yaml: %w", err)
	}
	arts = append(arts,
		Artifact{Path: path.Join(root, "pim.yaml"), Content: pimYAML},
		Artifact{Path: path.Join(root, "psm.yaml"), Content: psmYAML},
	)
	return arts, nil
}

func databaseURI(engine, project string) string {
	if engine == "postgresql" {
		return "postgresql://localhost:5432/" + project
	}
	return "sqlite:///" + project + ".db"
}
