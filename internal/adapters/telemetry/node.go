package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/conspect/conspect/internal/adapters/logger"
	"github.com/conspect/conspect/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.telemetry"

// TraceEnv enables span timing output when set to a non-empty value.
const TraceEnv = "CONSPECT_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(TraceEnv) == "" {
				return NewNoOpTracer(), nil
			}

			lg, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(lg), nil
		},
	})
}
