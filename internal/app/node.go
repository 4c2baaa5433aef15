package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/colortools/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/colortools/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/colortools/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/colortools/internal/adapters/render"   //nolint:depguard // Wired in app layer
	"go.trai.ch/colortools/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			render.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.ConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	terminal, err := graft.Dep[ports.Terminal](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, log, renderer, terminal), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
