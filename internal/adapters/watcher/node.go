package watcher

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/conspect/conspect/internal/adapters/logger"
	"github.com/conspect/conspect/internal/core/ports"
)

// NodeID is the unique identifier for the watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

// TrackerNodeID is the unique identifier for the content tracker Graft node.
const TrackerNodeID graft.ID = "adapter.watcher.tracker"

func init() {
	graft.Register(graft.Node[*ContentTracker]{
		ID:        TrackerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*ContentTracker, error) {
			return NewContentTracker(), nil
		},
	})

	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, TrackerNodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracker, err := graft.Dep[*ContentTracker](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(lg, tracker)
		},
	})
}
