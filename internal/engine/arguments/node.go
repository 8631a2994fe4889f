package arguments

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nbuild/internal/adapters/cache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbuild/internal/adapters/fs"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nbuild/internal/core/ports"
)

// NodeID is the unique identifier for the argument builder Graft node.
const NodeID graft.ID = "engine.arguments"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			cache.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			paths, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			manager, err := graft.Dep[ports.CacheManager](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(paths, manager), nil
		},
	})
}
