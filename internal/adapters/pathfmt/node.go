package pathfmt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recent/internal/core/ports"
)

// NodeID is the unique identifier for the display formatter Graft node.
const NodeID graft.ID = "adapter.pathfmt"

func init() {
	graft.Register(graft.Node[ports.DisplayFormatter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DisplayFormatter, error) {
			return New(), nil
		},
	})
}
