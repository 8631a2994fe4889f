package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbuild/internal/adapters/logger"
	"go.trai.ch/nbuild/internal/core/ports"
)

// NodeID is the unique identifier for the cache manager Graft node.
const NodeID graft.ID = "adapter.cache_manager"

func init() {
	graft.Register(graft.Node[ports.CacheManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheManager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(log), nil
		},
	})
}
