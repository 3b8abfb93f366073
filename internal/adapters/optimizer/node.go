package optimizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/breeze/internal/core/ports"
)

// NodeID is the unique identifier for the optimizer Graft node.
const NodeID graft.ID = "adapter.optimizer"

func init() {
	graft.Register(graft.Node[ports.Optimizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Optimizer, error) {
			return New(), nil
		},
	})
}
