package menu

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recent/internal/adapters/config"
	"go.trai.ch/recent/internal/adapters/logger"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the menu registry Graft node.
	NodeID graft.ID = "adapter.menu"
	// CommandRegistryNodeID exposes the menu registry as a ports.CommandRegistry.
	CommandRegistryNodeID graft.ID = "adapter.menu.commands"
	// ActionCatalogNodeID exposes the menu registry as a ports.ActionCatalog.
	ActionCatalogNodeID graft.ID = "adapter.menu.actions"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, settings.OpenIconPath), nil
		},
	})

	graft.Register(graft.Node[ports.CommandRegistry]{
		ID:        CommandRegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.CommandRegistry, error) {
			r, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})

	graft.Register(graft.Node[ports.ActionCatalog]{
		ID:        ActionCatalogNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.ActionCatalog, error) {
			r, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})
}
