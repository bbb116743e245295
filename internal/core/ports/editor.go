package ports

import (
	"context"

	"go.trai.ch/weave/internal/core/domain"
)

// EditorInvoker drives the editor in batch mode.
//
//go:generate mockgen -source=editor.go -destination=mocks/mock_editor.go -package=mocks
type EditorInvoker interface {
	// RegenerateProjects asks the editor to regenerate the IDE project files of a platform root.
	RegenerateProjects(ctx context.Context, paths domain.ProjectPaths) error
}

// BuildTool builds generated IDE solutions.
type BuildTool interface {
	// Build compiles the solution with the named configuration.
	Build(ctx context.Context, solutionPath, configuration string) error
}
