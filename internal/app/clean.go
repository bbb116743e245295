package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
)

// Clean removes the links and platform roots of every configured target of a project,
// together with the IDE solution files generated for them.
func (a *App) Clean(_ context.Context, project string) error {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return err
	}
	return a.cleanTargets(cfg, paths)
}

// CleanAll cleans every project under the projects directory.
func (a *App) CleanAll(ctx context.Context) error {
	return a.forEachProject(ctx, func(project string) error {
		return a.Clean(ctx, project)
	})
}

// Delete cleans a project and removes its directory. Package contents are never touched.
func (a *App) Delete(ctx context.Context, project string) error {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return err
	}

	if err := a.cleanTargets(cfg, paths); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := a.fs.RemoveAll(paths.ProjectRoot()); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("deleted project %s", paths.ProjectName()))
	return nil
}

func (a *App) cleanTargets(cfg *domain.ProjectConfig, paths domain.ProjectPaths) error {
	var errs error
	for _, t := range cfg.Targets {
		errs = errors.Join(errs, a.cleanTarget(paths.WithTarget(t)))
	}
	return errs
}

func (a *App) cleanTarget(paths domain.ProjectPaths) error {
	root := paths.PlatformRoot()
	if a.fs.DirExists(root) {
		a.logger.Info(fmt.Sprintf("removing %s...", root))
		if err := a.materializer.Teardown(paths); err != nil {
			return err
		}
		if err := a.fs.RemoveAll(root); err != nil {
			return err
		}
	}

	names, err := a.fs.ReadDir(paths.ProjectRoot())
	if err != nil {
		return err
	}
	prefix := paths.SolutionBaseName() + "."
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		path := filepath.Join(paths.ProjectRoot(), name)
		if !a.fs.FileExists(path) {
			continue
		}
		if err := a.fs.Remove(path); err != nil {
			return err
		}
		a.logger.Debug(fmt.Sprintf("removed %s", path))
	}
	return nil
}
