package generator

import (
	"fmt"
	"path"

	"github.com/roach88/mdgen/internal/render"
)

const frontendRoot = "frontend"

// React emits one component per entity.
type React struct {
	renderer render.Renderer
}

func (*React) Name() string { return FrontendKey("react") }

func (g *React) Generate(in Input) ([]Artifact, error) {
	fe := in.Result.Frontend

	var arts []Artifact
	for _, c := range fe.Components {
		out, err := g.renderer.Render("react_component.jsx.tmpl", map[string]any{"Component": c})
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Name, err)
		}
		arts = append(arts, Artifact{
			Path:    path.Join(frontendRoot, "src/components", c.Name+"Component.jsx"),
			Content: []byte(out),
		})
	}

	psmYAML, err := fe.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("psm yaml: %w", err)
	}
	arts = append(arts, Artifact{Path: path.Join(frontendRoot, "psm.yaml"), Content: psmYAML})
	return arts, nil
}
