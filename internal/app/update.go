package app

import (
	"context"
	"fmt"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// Update resolves and materializes a project. A nil target updates every configured
// target. A target the project does not declare yet is added to its config first.
func (a *App) Update(ctx context.Context, project string, target *domain.ProjectTarget) error {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return err
	}

	if target != nil && !cfg.HasTarget(*target) {
		if err := a.config.AddTarget(paths, *target); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("added target %s to %s", target, paths.ProjectName()))
	}

	for _, t := range selectTargets(cfg, target) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.updateTarget(paths.WithTarget(t)); err != nil {
			return zerr.With(err, "target", t.DisplayName())
		}
	}
	return nil
}

// UpdateAll updates every configured target of every project.
func (a *App) UpdateAll(ctx context.Context) error {
	return a.forEachProject(ctx, func(project string) error {
		return a.Update(ctx, project, nil)
	})
}

func (a *App) updateTarget(paths domain.ProjectPaths) error {
	schema, err := a.schemas.LoadSchema(paths)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve packages")
	}

	if !a.fs.DirExists(paths.PlatformRoot()) {
		a.logger.Warn(fmt.Sprintf("%s is not initialized for %s, creating %s",
			paths.ProjectName(), paths.Target(), paths.PlatformRoot()))
	}

	plan, err := a.materializer.Materialize(schema, paths)
	if err != nil {
		return zerr.Wrap(err, "failed to update links")
	}

	a.logger.Info(fmt.Sprintf("updated %s (%s): %d package(s), %d link(s)",
		paths.ProjectName(), paths.Target(), schema.Len(), len(plan.Entries)))
	return nil
}
