package linear

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/breeze/internal/adapters/detector"
	"go.trai.ch/breeze/internal/core/ports"
)

// NodeID is the unique identifier for the linear reporter Graft node.
const NodeID graft.ID = "adapter.reporter.linear"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewReporter(os.Stderr, detector.DetectEnvironment()), nil
		},
	})
}
