package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/breeze/internal/adapters/css"
	"go.trai.ch/breeze/internal/core/ports"
)

// NodeID is the unique identifier for the compiler factory Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.CompilerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{css.ParserNodeID, css.PrinterNodeID},
		Run: func(ctx context.Context) (ports.CompilerFactory, error) {
			parser, err := graft.Dep[ports.StylesheetParser](ctx)
			if err != nil {
				return nil, err
			}
			printer, err := graft.Dep[ports.StylesheetPrinter](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(parser, printer), nil
		},
	})
}
