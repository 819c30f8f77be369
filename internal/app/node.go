package app

import (
	"context"
	"io"

	"github.com/grindlemire/graft"
	"go.trai.ch/recent/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/recent/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/recent/internal/adapters/menu"      //nolint:depguard // Wired in app layer
	"go.trai.ch/recent/internal/adapters/prefs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/recent/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/recent/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
	"go.trai.ch/recent/internal/engine/recent"
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
			recent.NodeID,
			menu.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			prefs.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	registry, err := graft.Dep[*recent.Registry](ctx)
	if err != nil {
		return nil, err
	}

	menuRegistry, err := graft.Dep[*menu.Registry](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
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

	return New(registry, menuRegistry, newWatcher, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	if l, ok := log.(*logger.Logger); ok {
		l.SetJSON(settings.LogJSON)
	}

	store, err := graft.Dep[ports.PreferenceStore](ctx)
	if err != nil {
		return nil, err
	}

	var closers []io.Closer
	if c, ok := store.(io.Closer); ok {
		closers = append(closers, c)
	}

	return NewComponents(application, log, closers...), nil
}
