package recipe

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/conspect/conspect/internal/adapters/logger"
	"github.com/conspect/conspect/internal/core/ports"
)

// NodeID is the unique identifier for the recipe loader Graft node.
const NodeID graft.ID = "adapter.recipe"

func init() {
	graft.Register(graft.Node[ports.RecipeLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RecipeLoader, error) {
			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(lg), nil
		},
	})
}
