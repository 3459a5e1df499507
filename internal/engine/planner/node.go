package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/lockfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.SnapshotterNodeID,
			lockfile.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			snapshotter, err := graft.Dep[ports.FilesetSnapshotter](ctx)
			if err != nil {
				return nil, err
			}

			lockfiles, err := graft.Dep[ports.LockfileResolver](ctx)
			if err != nil {
				return nil, err
			}

			return New(snapshotter, lockfiles), nil
		},
	})
}
