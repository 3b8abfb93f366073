package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/breeze/internal/adapters/fs"
	"go.trai.ch/breeze/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the build info store Graft node.
	NodeID graft.ID = "adapter.build_info_store"
	// WriterNodeID is the unique identifier for the output writer Graft node.
	WriterNodeID graft.ID = "adapter.output_writer"
)

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildInfoStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.OutputWriter, error) {
			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(store, hasher), nil
		},
	})
}
