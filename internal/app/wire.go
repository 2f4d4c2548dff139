package app

import (
	"coplot/internal/dataset"
	"coplot/internal/figure"
	"coplot/internal/figures/bars"
	"coplot/internal/figures/dualaxis"
	"coplot/internal/figures/grid"
	"coplot/internal/render"
)

// Wire bundles the figure registry, dataset store and renderer for the
// binaries.
type Wire struct {
	Figures  *figure.Registry
	Store    *dataset.FileStore
	Renderer render.Renderer
}

// NewWire constructs the dependency graph from cfg: the four canonical
// figures in listing order, a table store rooted at the data directory and
// the shared renderer.
func NewWire(cfg Config) (*Wire, error) {
	reg := figure.NewRegistry()
	builders := []figure.Builder{
		dualaxis.New(),
		grid.New(),
		bars.NewGrouped(),
		bars.NewStacked(),
	}
	for _, b := range builders {
		if err := reg.Register(b); err != nil {
			return nil, err
		}
	}

	return &Wire{
		Figures:  reg,
		Store:    dataset.NewFileStore(cfg.Data),
		Renderer: render.Renderer{},
	}, nil
}
