package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const (
	WalkerNodeID      graft.ID = "adapter.fs.walker"
	SnapshotterNodeID graft.ID = "adapter.fs.snapshotter"
)

func init() {
	// Walker Node (Concrete implementation needed by Snapshotter)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Snapshotter Node
	graft.Register(graft.Node[ports.FilesetSnapshotter]{
		ID:        SnapshotterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FilesetSnapshotter, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSnapshotter(walker), nil
		},
	})
}
