package app

import (
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/breeze/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Registry *prom.Registry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, registry *prom.Registry) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Registry: registry,
	}
}
