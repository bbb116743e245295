package app

import (
	"fmt"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// TargetStatus is the link drift of one project target.
type TargetStatus struct {
	Target domain.ProjectTarget
	Drift  *domain.LinkDrift
}

// ProjectEntry is one project of the projects directory.
type ProjectEntry struct {
	Name    string
	Alias   string
	Default bool
}

// ListProjects returns every project under the projects directory with its alias and
// whether it is the default project.
func (a *App) ListProjects() ([]ProjectEntry, error) {
	names, err := a.config.ListProjects(a.settings.ProjectsDir)
	if err != nil {
		return nil, err
	}

	entries := make([]ProjectEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, ProjectEntry{
			Name:    name,
			Alias:   a.settings.AliasOf(name),
			Default: name == a.settings.DefaultProject,
		})
	}
	return entries, nil
}

// ListPackages returns every package available in the search roots of a project.
func (a *App) ListPackages(project string) ([]string, error) {
	cfg, _, err := a.loadConfig(project)
	if err != nil {
		return nil, err
	}
	return a.catalog.ListPackages(cfg.Roots)
}

// ListTargets returns the targets a project declares.
func (a *App) ListTargets(project string) ([]domain.ProjectTarget, error) {
	cfg, _, err := a.loadConfig(project)
	if err != nil {
		return nil, err
	}
	return cfg.Targets, nil
}

// AddPackage lists a package in the project config. The package must exist in one of
// the project's search roots.
func (a *App) AddPackage(project, name string, tier domain.Tier) error {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return err
	}

	if cfg.ListsPackage(name) {
		return domain.Annotate(domain.ErrPackageAlreadyListed,
			"package", name,
			"project", paths.ProjectName(),
		)
	}
	if _, err := a.catalog.Resolve(name, cfg.Roots); err != nil {
		return err
	}

	if err := a.config.AddPackage(paths, name, tier); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("added %s to %s as %s package", name, paths.ProjectName(), tier))
	return nil
}

// Status compares the links on disk with the resolved schema of each target. Nothing is
// modified.
func (a *App) Status(project string, target *domain.ProjectTarget) ([]TargetStatus, error) {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return nil, err
	}

	var statuses []TargetStatus
	for _, t := range selectTargets(cfg, target) {
		tp := paths.WithTarget(t)
		schema, err := a.schemas.LoadSchema(tp)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve packages"), "target", t.DisplayName())
		}
		drift, err := a.materializer.Inspect(schema, tp)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, TargetStatus{Target: t, Drift: drift})
	}
	return statuses, nil
}
