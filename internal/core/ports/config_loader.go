package ports

import "go.trai.ch/weave/internal/core/domain"

// ConfigLoader defines the interface for reading and updating project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadProjectConfig merges every config layer of the project into a ProjectConfig.
	// Path values are expanded against the given path context.
	LoadProjectConfig(paths domain.ProjectPaths) (*domain.ProjectConfig, error)

	// AddTarget appends a target to the project's shared config file.
	AddTarget(paths domain.ProjectPaths, target domain.ProjectTarget) error

	// AddPackage appends a package to the plugin or asset list of the project's shared config file.
	AddPackage(paths domain.ProjectPaths, name string, tier domain.Tier) error

	// CreateProjectConfig writes the initial config file of a new project.
	CreateProjectConfig(paths domain.ProjectPaths, cfg *domain.ProjectConfig) error

	// ListProjects returns the names of every directory under projectsDir holding a project config.
	ListProjects(projectsDir string) ([]string, error)
}
