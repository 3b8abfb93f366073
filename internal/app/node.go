package app

import (
	"context"

	"github.com/grindlemire/graft"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/breeze/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/adapters/css"       //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/breeze/internal/engine/stage"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			css.LoaderNodeID,
			css.ParserNodeID,
			stage.NodeID,
			cas.WriterNodeID,
			linear.NodeID,
			watcher.NodeID,
			metrics.NodeID,
			metrics.RegistryNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			metrics.RegistryNodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	sheets, err := graft.Dep[ports.StylesheetLoader](ctx)
	if err != nil {
		return nil, err
	}
	parser, err := graft.Dep[ports.StylesheetParser](ctx)
	if err != nil {
		return nil, err
	}
	st, err := graft.Dep[*stage.Stage](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	registry, err := graft.Dep[*prom.Registry](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sheets, parser, st, writer, reporter, w, recorder, registry, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*prom.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, registry), nil
}
