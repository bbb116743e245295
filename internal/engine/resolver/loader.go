package resolver

import (
	"fmt"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/enforcer"
)

// SchemaLoader turns a project config into an enforced, immutable schema.
type SchemaLoader struct {
	config   ports.ConfigLoader
	builder  *Builder
	enforcer *enforcer.Enforcer
	logger   ports.Logger
}

// NewSchemaLoader creates a new SchemaLoader.
func NewSchemaLoader(
	config ports.ConfigLoader,
	builder *Builder,
	enf *enforcer.Enforcer,
	logger ports.Logger,
) *SchemaLoader {
	return &SchemaLoader{
		config:   config,
		builder:  builder,
		enforcer: enf,
		logger:   logger,
	}
}

// LoadSchema loads the project config for the paths and resolves it for the paths' target.
func (l *SchemaLoader) LoadSchema(paths domain.ProjectPaths) (*domain.ProjectSchema, error) {
	cfg, err := l.config.LoadProjectConfig(paths)
	if err != nil {
		return nil, err
	}
	return l.Resolve(cfg, paths.Target())
}

// Resolve expands, repairs and validates the config's packages for the target.
// No schema is returned when any step fails.
func (l *SchemaLoader) Resolve(cfg *domain.ProjectConfig, target domain.ProjectTarget) (*domain.ProjectSchema, error) {
	exp, err := l.builder.Expand(cfg, target.Platform)
	if err != nil {
		return nil, err
	}

	if err := l.builder.MarkCustomProjects(exp, cfg.CustomBuildProjectPatterns); err != nil {
		return nil, err
	}

	l.enforcer.PropagateGroupedDependencies(exp.Graph)

	if err := exp.Graph.ComputeClosures(); err != nil {
		return nil, err
	}

	if err := l.enforcer.Enforce(exp.Graph); err != nil {
		return nil, err
	}

	schema := domain.NewProjectSchema(cfg, exp.Graph, target)
	l.logger.Debug(fmt.Sprintf("resolved %d package(s) of %s for %s", schema.Len(), cfg.ProjectName, target.DisplayName()))
	return schema, nil
}
