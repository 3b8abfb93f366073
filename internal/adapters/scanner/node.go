package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/breeze/internal/adapters/fs"
	"go.trai.ch/breeze/internal/core/ports"
)

// NodeID is the unique identifier for the content scanner Graft node.
const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return New(walker), nil
		},
	})
}
