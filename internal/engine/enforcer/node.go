package enforcer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weave/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the enforcer Graft node.
const NodeID graft.ID = "engine.enforcer"

func init() {
	graft.Register(graft.Node[*Enforcer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Enforcer, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fsys, log), nil
		},
	})
}
