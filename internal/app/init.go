package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/weave/internal/core/domain"
)

// Path values written into the config of a new project.
const (
	defaultEngineSettingsPath = domain.TokenProjectRoot + "/" + domain.ProjectSettingsDirName
	defaultPackageManagerPath = domain.TokenProjectRoot + "/" + domain.PackagesDirName
	defaultPackageRoot        = domain.TokenProjectsDir + "/" + domain.PackagesDirName
)

// InitOptions configure a new project.
type InitOptions struct {
	// SettingsFrom names a project whose engine settings the new project shares.
	SettingsFrom string
	// PackageRoots are written as packageRoots; empty means [ProjectsDir]/Packages.
	PackageRoots []string
	// Target is the first target; nil means the default platform.
	Target *domain.ProjectTarget
}

// Init creates a new project directory with its engine settings, its package manager
// directory and an initial config, then materializes it.
func (a *App) Init(ctx context.Context, project string, opts InitOptions) error {
	target := domain.NewProjectTarget(domain.DefaultPlatform, "")
	if opts.Target != nil {
		target = *opts.Target
	}
	paths := a.paths(project, target)

	if a.fs.DirExists(paths.ProjectRoot()) {
		return domain.Annotate(domain.ErrProjectExists,
			"project", project,
			"path", paths.ProjectRoot(),
		)
	}

	settingsPath, err := a.settingsSource(opts.SettingsFrom)
	if err != nil {
		return err
	}

	if err := a.fs.MkdirAll(paths.ProjectRoot()); err != nil {
		return err
	}
	if settingsPath == defaultEngineSettingsPath {
		if err := a.createSettings(filepath.Join(paths.ProjectRoot(), domain.ProjectSettingsDirName)); err != nil {
			return err
		}
	}
	if err := a.fs.MkdirAll(filepath.Join(paths.ProjectRoot(), domain.PackagesDirName)); err != nil {
		return err
	}

	roots := opts.PackageRoots
	if len(roots) == 0 {
		roots = []string{defaultPackageRoot}
	}

	cfg := &domain.ProjectConfig{
		ProjectName:        project,
		Roots:              domain.SearchRoots{Libraries: roots},
		Targets:            []domain.ProjectTarget{target},
		EngineSettingsPath: settingsPath,
		PackageManagerPath: defaultPackageManagerPath,
	}
	if err := a.config.CreateProjectConfig(paths, cfg); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("created project %s at %s", project, paths.ProjectRoot()))

	return a.Update(ctx, project, nil)
}

// settingsSource returns the engineSettingsPath value of a new project. Sharing settings
// points the new project at the resolved settings directory of another project.
func (a *App) settingsSource(from string) (string, error) {
	if from == "" {
		return defaultEngineSettingsPath, nil
	}
	cfg, _, err := a.loadConfig(from)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(cfg.EngineSettingsPath), nil
}

func (a *App) createSettings(dst string) error {
	if a.settings.DefaultSettingsDir == "" {
		return a.fs.MkdirAll(dst)
	}
	a.logger.Debug(fmt.Sprintf("copying default settings from %s", a.settings.DefaultSettingsDir))
	return a.fs.CopyDir(a.settings.DefaultSettingsDir, dst)
}
