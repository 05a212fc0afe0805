package probe

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/conspect/conspect/internal/core/ports"
)

// NodeID is the unique identifier for the host probe Graft node.
const NodeID graft.ID = "adapter.probe"

func init() {
	graft.Register(graft.Node[ports.Probe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Probe, error) {
			return New(), nil
		},
	})
}
