package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/catalog" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weave/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weave/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/enforcer"
)

// NodeID is the unique identifier for the schema loader Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*SchemaLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			catalog.NodeID,
			enforcer.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*SchemaLoader, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			cat, err := graft.Dep[ports.PackageCatalog](ctx)
			if err != nil {
				return nil, err
			}

			enf, err := graft.Dep[*enforcer.Enforcer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewSchemaLoader(loader, NewBuilder(cat, log), enf, log), nil
		},
	})
}
