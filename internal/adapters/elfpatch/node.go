package elfpatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.elfpatch"

func init() {
	graft.Register(graft.Node[ports.Patcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Patcher, error) {
			return NewPatcher(), nil
		},
	})
}
