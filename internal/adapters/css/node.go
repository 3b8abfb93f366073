package css

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/breeze/internal/core/ports"
)

const (
	// ParserNodeID is the unique identifier for the stylesheet parser Graft node.
	ParserNodeID graft.ID = "adapter.css.parser"
	// PrinterNodeID is the unique identifier for the stylesheet printer Graft node.
	PrinterNodeID graft.ID = "adapter.css.printer"
	// LoaderNodeID is the unique identifier for the stylesheet loader Graft node.
	LoaderNodeID graft.ID = "adapter.css.loader"
)

func init() {
	graft.Register(graft.Node[ports.StylesheetParser]{
		ID:        ParserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StylesheetParser, error) {
			return NewParser(), nil
		},
	})

	graft.Register(graft.Node[ports.StylesheetPrinter]{
		ID:        PrinterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StylesheetPrinter, error) {
			return NewPrinter(), nil
		},
	})

	graft.Register(graft.Node[ports.StylesheetLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ParserNodeID},
		Run: func(ctx context.Context) (ports.StylesheetLoader, error) {
			parser, err := graft.Dep[ports.StylesheetParser](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(parser), nil
		},
	})
}
