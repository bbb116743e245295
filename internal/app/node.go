package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/catalog" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/editor"  //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/materializer"
	"go.trai.ch/weave/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			catalog.NodeID,
			resolver.NodeID,
			materializer.NodeID,
			fs.FileSystemNodeID,
			editor.NodeID,
			editor.BuildToolNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	cat, err := graft.Dep[ports.PackageCatalog](ctx)
	if err != nil {
		return nil, err
	}

	schemas, err := graft.Dep[*resolver.SchemaLoader](ctx)
	if err != nil {
		return nil, err
	}

	mat, err := graft.Dep[*materializer.Materializer](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	ed, err := graft.Dep[ports.EditorInvoker](ctx)
	if err != nil {
		return nil, err
	}

	tool, err := graft.Dep[ports.BuildTool](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, cat, schemas, mat, fsys, ed, tool, watchers, log, settings), nil
}
