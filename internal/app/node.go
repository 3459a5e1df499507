package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/elfpatch" //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/receipts" //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/composer"
	"go.trai.ch/forge/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			planner.NodeID,
			composer.NodeID,
			shell.NodeID,
			elfpatch.NodeID,
			receipts.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	plans, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	envs, err := graft.Dep[*composer.Composer](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.BuildExecutor](ctx)
	if err != nil {
		return nil, err
	}

	patcher, err := graft.Dep[ports.Patcher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReceiptStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, plans, envs, executor, patcher, store, log), nil
}
