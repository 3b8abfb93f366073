package stage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/breeze/internal/adapters/compiler"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/adapters/css"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/adapters/optimizer" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/adapters/scanner"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/breeze/internal/core/ports"
)

// NodeID is the unique identifier for the build stage Graft node.
const NodeID graft.ID = "engine.stage"

func init() {
	graft.Register(graft.Node[*Stage]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			compiler.NodeID,
			scanner.NodeID,
			optimizer.NodeID,
			css.ParserNodeID,
			css.PrinterNodeID,
			fs.StaterNodeID,
			fs.ResolverNodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Stage, error) {
			compilers, err := graft.Dep[ports.CompilerFactory](ctx)
			if err != nil {
				return nil, err
			}

			scan, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			opt, err := graft.Dep[ports.Optimizer](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.StylesheetParser](ctx)
			if err != nil {
				return nil, err
			}

			printer, err := graft.Dep[ports.StylesheetPrinter](ctx)
			if err != nil {
				return nil, err
			}

			stater, err := graft.Dep[ports.Stater](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ModuleResolver](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(compilers, scan, opt, parser, printer, stater, resolver, tracer, recorder, log), nil
		},
	})
}
