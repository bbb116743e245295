package app

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// Build regenerates the IDE project files of each target with the editor and compiles
// the generated solution. A nil target builds every configured target.
func (a *App) Build(ctx context.Context, project string, target *domain.ProjectTarget, configuration string) error {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return err
	}
	if configuration == "" {
		configuration = domain.DefaultConfiguration
	}

	for _, t := range selectTargets(cfg, target) {
		tp := paths.WithTarget(t)
		if !a.fs.DirExists(tp.PlatformRoot()) {
			return domain.Annotate(domain.ErrProjectNotInitialized,
				"project", paths.ProjectName(),
				"target", t.DisplayName(),
				"path", tp.PlatformRoot(),
			)
		}

		a.logger.Info(fmt.Sprintf("generating project files for %s (%s)", paths.ProjectName(), t))
		if err := a.editor.RegenerateProjects(ctx, tp); err != nil {
			return zerr.With(err, "target", t.DisplayName())
		}

		a.logger.Info(fmt.Sprintf("building %s (%s)", tp.SolutionPath(), configuration))
		if err := a.buildTool.Build(ctx, tp.SolutionPath(), configuration); err != nil {
			return zerr.With(err, "target", t.DisplayName())
		}
	}
	return nil
}

// BuildPrebuilt compiles the prebuilt projects of the resolved packages, dependencies
// first. Each project builds with its own configuration, or configuration when it
// declares none. A project shared by several targets builds once.
func (a *App) BuildPrebuilt(ctx context.Context, project string, target *domain.ProjectTarget, configuration string) error {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return err
	}
	if configuration == "" {
		configuration = domain.DefaultConfiguration
	}

	built := make(map[string]bool)
	for _, t := range selectTargets(cfg, target) {
		schema, err := a.schemas.LoadSchema(paths.WithTarget(t))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve packages"), "target", t.DisplayName())
		}

		for _, r := range prebuiltInBuildOrder(schema) {
			if built[r.Prebuilt.Path] {
				continue
			}
			built[r.Prebuilt.Path] = true

			conf := cmp.Or(r.Prebuilt.Configuration, configuration)
			a.logger.Info(fmt.Sprintf("building prebuilt project %s (%s) for %s",
				cmp.Or(r.Prebuilt.AssemblyName, r.Name), conf, r.Name))
			if err := a.buildTool.Build(ctx, r.Prebuilt.Path, conf); err != nil {
				return zerr.With(err, "package", r.Name)
			}
		}
	}
	return nil
}

// prebuiltInBuildOrder returns the prebuilt packages of a schema so that every package
// comes after the packages it depends on. A dependency's closure is always smaller than
// the closure of its dependent.
func prebuiltInBuildOrder(schema *domain.ProjectSchema) []domain.PackageRecord {
	var records []domain.PackageRecord
	for r := range schema.Packages() {
		if r.IsPrebuilt() {
			records = append(records, r)
		}
	}
	slices.SortStableFunc(records, func(a, b domain.PackageRecord) int {
		return cmp.Compare(len(a.AllDependencies), len(b.AllDependencies))
	})
	return records
}
