package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/conspect/conspect/internal/adapters/logger"
	"github.com/conspect/conspect/internal/adapters/probe"
	"github.com/conspect/conspect/internal/adapters/recipe"
	"github.com/conspect/conspect/internal/adapters/telemetry"
	"github.com/conspect/conspect/internal/adapters/watcher"
	"github.com/conspect/conspect/internal/core/ports"
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
			recipe.NodeID,
			probe.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.RecipeLoader](ctx)
	if err != nil {
		return nil, err
	}

	hostProbe, err := graft.Dep[ports.Probe](ctx)
	if err != nil {
		return nil, err
	}

	recipeWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, hostProbe, recipeWatcher, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	mainApp, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    mainApp,
		Logger: log,
		Tracer: tracer,
	}, nil
}
