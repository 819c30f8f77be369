package prefs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recent/internal/adapters/config"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
)

// NodeID is the unique identifier for the preference store Graft node.
const NodeID graft.ID = "adapter.preference_store"

func init() {
	graft.Register(graft.Node[ports.PreferenceStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PreferenceStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			store, err := Open(settings.StorePath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
