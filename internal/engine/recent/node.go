package recent

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recent/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/recent/internal/adapters/factory" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/recent/internal/adapters/menu"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/recent/internal/adapters/prefs"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
)

// NodeID is the unique identifier for the recent registry Graft node.
const NodeID graft.ID = "engine.recent"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			prefs.NodeID,
			menu.CommandRegistryNodeID,
			factory.NodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.PreferenceStore](ctx)
			if err != nil {
				return nil, err
			}

			commands, err := graft.Dep[ports.CommandRegistry](ctx)
			if err != nil {
				return nil, err
			}

			descriptors, err := graft.Dep[ports.DescriptorFactory](ctx)
			if err != nil {
				return nil, err
			}

			r, err := NewRegistry(store, commands, descriptors)
			if err != nil {
				return nil, err
			}
			return r.WithMaxShown(settings.MaxShown), nil
		},
	})
}
