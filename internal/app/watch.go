package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/weave/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/domain"
)

// Watch updates a project, then updates it again whenever one of its config files or a
// package config inside its search roots changes. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, project string) error {
	project, err := a.resolveProject(project)
	if err != nil {
		return err
	}
	if err := a.Update(ctx, project, nil); err != nil {
		return err
	}

	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return err
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Stop()
	}()

	roots := a.watchRoots(paths, cfg)
	if err := w.Start(ctx, roots...); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %d director(ies) for config changes of %s", len(roots), project))

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(changed []string) {
		a.mu.Lock()
		defer a.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		a.logger.Info(fmt.Sprintf("%d config file(s) changed, updating %s", len(changed), project))
		if err := a.Update(ctx, project, nil); err != nil {
			a.logger.Error(err)
		}
	})

	for ev := range w.Events() {
		if isConfigFile(ev.Path) {
			a.logger.Debug(fmt.Sprintf("config change: %s", ev.Path))
			debouncer.Add(ev.Path)
		}
	}
	debouncer.Flush()

	// Wait for an update fired by the debouncer before returning.
	a.mu.Lock()
	defer a.mu.Unlock()

	return ctx.Err()
}

// watchRoots returns the project root and every existing package search root.
func (a *App) watchRoots(paths domain.ProjectPaths, cfg *domain.ProjectConfig) []string {
	roots := []string{paths.ProjectRoot()}
	for _, group := range [][]string{cfg.Roots.Libraries, cfg.Roots.Projects} {
		for _, root := range group {
			if a.fs.DirExists(root) {
				roots = append(roots, root)
			}
		}
	}
	return roots
}

func isConfigFile(path string) bool {
	switch filepath.Base(path) {
	case domain.ProjectConfigFileName, domain.ProjectUserConfigFileName, domain.PackageConfigFileName:
		return true
	}
	return false
}
