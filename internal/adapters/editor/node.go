package editor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/config"
	"go.trai.ch/weave/internal/adapters/logger"
	"go.trai.ch/weave/internal/adapters/shell"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the editor Graft node.
	NodeID graft.ID = "adapter.editor"
	// BuildToolNodeID is the unique identifier for the build tool Graft node.
	BuildToolNodeID graft.ID = "adapter.build_tool"
)

func init() {
	graft.Register(graft.Node[ports.EditorInvoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.EditorInvoker, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, log, config.NewOSFS(), settings), nil
		},
	})

	graft.Register(graft.Node[ports.BuildTool]{
		ID:        BuildToolNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewMSBuild(runner, settings.BuildToolPath), nil
		},
	})
}
