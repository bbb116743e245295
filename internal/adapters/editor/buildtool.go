package editor

import (
	"context"
	"path/filepath"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

var _ ports.BuildTool = (*MSBuild)(nil)

// MSBuild implements ports.BuildTool with an msbuild-compatible command line.
type MSBuild struct {
	runner   ports.CommandRunner
	toolPath string
}

// NewMSBuild creates a build tool running the executable at toolPath.
func NewMSBuild(runner ports.CommandRunner, toolPath string) *MSBuild {
	return &MSBuild{runner: runner, toolPath: toolPath}
}

// Build compiles the solution with the configuration.
func (b *MSBuild) Build(ctx context.Context, solutionPath, configuration string) error {
	if b.toolPath == "" {
		return domain.Annotate(domain.ErrBuildToolNotConfigured, "solution", solutionPath)
	}
	if configuration == "" {
		configuration = domain.DefaultConfiguration
	}

	return b.runner.Run(ctx, ports.Command{
		Args: []string{b.toolPath, "/p:Configuration=" + configuration, solutionPath},
		Dir:  filepath.Dir(solutionPath),
	})
}
