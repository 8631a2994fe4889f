package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbuild/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/nbuild/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nbuild/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nbuild/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/nbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/nbuild/internal/engine/arguments"
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
			cache.NodeID,
			arguments.NodeID,
			shell.NodeID,
			progrock.NodeID,
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

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	manager, err := graft.Dep[ports.CacheManager](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*arguments.Builder](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, manager, builder, executor, telemetry, log), nil
}
