package generator

import (
	"fmt"

	"github.com/roach88/mdgen/internal/cim"
	"github.com/roach88/mdgen/internal/config"
	"github.com/roach88/mdgen/internal/pim"
	"github.com/roach88/mdgen/internal/psm/backend"
	"github.com/roach88/mdgen/internal/psm/frontend"
)

// BasePort is the port of the first service; each further service takes
// the next one.
const BasePort = 5000

// Service is one independently deployable backend holding a single
// entity.
type Service struct {
	Name    string
	Port    int
	PIM     *pim.Model
	Backend *backend.Model
}

// Result holds every model derived from one CIM.
type Result struct {
	CIM      *cim.Model
	PIM      *pim.Model
	Backend  *backend.Model
	Frontend *frontend.Model

	// Services is set for the microservices architecture only.
	Services []Service
}

// Pipeline derives the PIM and both PSMs. For the microservices
// architecture it also derives one PIM and backend model per entity. Any
// transformation error aborts the run and no result is returned.
func Pipeline(m *cim.Model, cfg config.Project) (*Result, error) {
	p, err := pim.Transform(m)
	if err != nil {
		return nil, fmt.Errorf("cim to pim: %w", err)
	}

	res := &Result{
		CIM:      m,
		PIM:      p,
		Backend:  backend.Transform(p),
		Frontend: frontend.Transform(p),
	}

	if cfg.Microservices() {
		parts, err := pim.TransformPerEntity(m)
		if err != nil {
			return nil, fmt.Errorf("cim to per-entity pim: %w", err)
		}
		for i, part := range parts {
			res.Services = append(res.Services, Service{
				Name:    part.Entities[0].Name,
				Port:    BasePort + i,
				PIM:     part,
				Backend: backend.Transform(part),
			})
		}
	}
	return res, nil
}
