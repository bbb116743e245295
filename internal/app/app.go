// Package app implements the application layer for weave.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/materializer"
	"go.trai.ch/weave/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	config       ports.ConfigLoader
	catalog      ports.PackageCatalog
	schemas      *resolver.SchemaLoader
	materializer *materializer.Materializer
	fs           ports.FileSystem
	editor       ports.EditorInvoker
	buildTool    ports.BuildTool
	watchers     ports.WatcherFactory
	logger       ports.Logger
	settings     *domain.Settings

	// mu serializes updates started by the watch loop.
	mu sync.Mutex
}

// New creates a new App instance.
func New(
	config ports.ConfigLoader,
	catalog ports.PackageCatalog,
	schemas *resolver.SchemaLoader,
	mat *materializer.Materializer,
	fs ports.FileSystem,
	editor ports.EditorInvoker,
	buildTool ports.BuildTool,
	watchers ports.WatcherFactory,
	log ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		config:       config,
		catalog:      catalog,
		schemas:      schemas,
		materializer: mat,
		fs:           fs,
		editor:       editor,
		buildTool:    buildTool,
		watchers:     watchers,
		logger:       log,
		settings:     settings,
	}
}

// Options are the global CLI options applied before any command runs.
type Options struct {
	Verbose     bool
	JSON        bool
	ProjectsDir string
}

type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Configure applies the global options.
func (a *App) Configure(opts Options) {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetVerbose(opts.Verbose)
		l.SetJSON(opts.JSON)
	}
	if opts.ProjectsDir != "" {
		a.settings.ProjectsDir = opts.ProjectsDir
	}
}

// paths returns the path context of a project target.
func (a *App) paths(project string, target domain.ProjectTarget) domain.ProjectPaths {
	return domain.NewProjectPaths(a.settings.ProjectsDir, project, target)
}

// resolveProject maps a project argument to a project directory name. An empty name
// selects the default project, or the only project when there is exactly one. A name
// without a project directory is looked up among the aliases.
func (a *App) resolveProject(name string) (string, error) {
	if name == "" {
		name = a.settings.DefaultProject
	}
	if name == "" {
		projects, err := a.config.ListProjects(a.settings.ProjectsDir)
		if err != nil {
			return "", err
		}
		if len(projects) != 1 {
			return "", domain.Annotate(domain.ErrNoProjectSelected,
				"projects_dir", a.settings.ProjectsDir,
				"projects", len(projects),
			)
		}
		name = projects[0]
	}

	if a.fs.DirExists(a.paths(name, domain.ProjectTarget{}).ProjectRoot()) {
		return name, nil
	}
	if project, ok := a.settings.ProjectAliases[name]; ok {
		a.logger.Debug(fmt.Sprintf("%s is an alias of %s", name, project))
		return project, nil
	}
	return name, nil
}

// loadConfig resolves the project name and loads its config without a target, for
// operations that only need names and roots.
func (a *App) loadConfig(project string) (*domain.ProjectConfig, domain.ProjectPaths, error) {
	name, err := a.resolveProject(project)
	if err != nil {
		return nil, domain.ProjectPaths{}, err
	}
	paths := a.paths(name, domain.ProjectTarget{})
	cfg, err := a.config.LoadProjectConfig(paths)
	if err != nil {
		return nil, paths, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, paths, nil
}

// selectTargets returns the requested target, or every configured target when none is given.
func selectTargets(cfg *domain.ProjectConfig, target *domain.ProjectTarget) []domain.ProjectTarget {
	if target != nil {
		return []domain.ProjectTarget{*target}
	}
	return cfg.Targets
}

// forEachProject runs fn for every project under the projects directory and joins the errors.
func (a *App) forEachProject(ctx context.Context, fn func(project string) error) error {
	projects, err := a.config.ListProjects(a.settings.ProjectsDir)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		a.logger.Warn(fmt.Sprintf("no projects found in %s", a.settings.ProjectsDir))
		return nil
	}

	var errs error
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return errors.Join(errs, err)
		}
		if err := fn(project); err != nil {
			errs = errors.Join(errs, zerr.With(err, "project", project))
		}
	}
	return errs
}
