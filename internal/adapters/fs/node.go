package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/config"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

const (
	WalkerNodeID     graft.ID = "adapter.fs.walker"
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	LinkerNodeID     graft.ID = "adapter.fs.linker"
)

func init() {
	// Walker Node (Concrete implementation needed by FileSystem)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// FileSystem Node
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileSystem(walker, settings.LockRetry), nil
		},
	})

	// Linker Node
	graft.Register(graft.Node[ports.Linker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Linker, error) {
			return NewLinker(), nil
		},
	})
}
