package factory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recent/internal/adapters/config"
	"go.trai.ch/recent/internal/adapters/menu"
	"go.trai.ch/recent/internal/adapters/pathfmt"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor factory Graft node.
const NodeID graft.ID = "adapter.factory"

func init() {
	graft.Register(graft.Node[ports.DescriptorFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, pathfmt.NodeID, menu.ActionCatalogNodeID},
		Run: func(ctx context.Context) (ports.DescriptorFactory, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			formatter, err := graft.Dep[ports.DisplayFormatter](ctx)
			if err != nil {
				return nil, err
			}
			catalog, err := graft.Dep[ports.ActionCatalog](ctx)
			if err != nil {
				return nil, err
			}
			return New(formatter, catalog, settings.MaxDisplayLength), nil
		},
	})
}
