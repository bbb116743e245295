// Package config provides the project configuration loader for weave.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using layered YAML files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger and filesystem.
func NewLoader(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// layer is one decoded config file.
type layer struct {
	path string
	file ProjectFile
}

// LoadProjectConfig merges the project's config layers.
// Scalars come from the first layer defining them, lists are concatenated in layer
// order without duplicates and folder groupings keep the first definition of each folder.
func (l *Loader) LoadProjectConfig(paths domain.ProjectPaths) (*domain.ProjectConfig, error) {
	if _, err := l.FS.Stat(paths.ProjectRoot()); err != nil {
		return nil, domain.Annotate(domain.ErrProjectNotFound,
			"project", paths.ProjectName(),
			"path", paths.ProjectRoot(),
		)
	}
	if _, err := l.FS.Stat(paths.ProjectConfigPath()); err != nil {
		return nil, domain.Annotate(domain.ErrProjectNotInitialized,
			"project", paths.ProjectName(),
			"path", paths.ProjectConfigPath(),
		)
	}

	layers, err := l.readLayers(paths.ConfigLayers())
	if err != nil {
		return nil, err
	}

	cfg, err := mergeLayers(layers)
	if err != nil {
		return nil, err
	}
	cfg.ProjectName = paths.ProjectName()

	if len(cfg.Roots.Libraries) == 0 {
		return nil, domain.Annotate(domain.ErrMissingConfigField,
			"field", "packageRoots",
			"path", paths.ProjectConfigPath(),
		)
	}
	if cfg.EngineSettingsPath == "" {
		return nil, domain.Annotate(domain.ErrMissingConfigField,
			"field", "engineSettingsPath",
			"path", paths.ProjectConfigPath(),
		)
	}

	expandPaths(cfg, paths)
	l.Logger.Debug(fmt.Sprintf("loaded config of %s from %d file(s)", paths.ProjectName(), len(layers)))

	return cfg, nil
}

func (l *Loader) readLayers(candidates []string) ([]layer, error) {
	layers := make([]layer, 0, len(candidates))
	for _, path := range candidates {
		data, err := l.FS.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, domain.Annotate(domain.ErrConfigReadFailed, "path", path, "cause", err.Error())
		}

		var file ProjectFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, domain.Annotate(domain.ErrConfigParseFailed, "path", path, "cause", err.Error())
		}
		layers = append(layers, layer{path: path, file: file})
	}
	return layers, nil
}

func mergeLayers(layers []layer) (*domain.ProjectConfig, error) {
	cfg := &domain.ProjectConfig{}
	var legacyPlatforms []string
	seenFolders := make(map[string]bool)

	for _, ly := range layers {
		f := ly.file
		cfg.Sources = append(cfg.Sources, ly.path)

		cfg.PluginPackages = appendUnique(cfg.PluginPackages, f.PluginPackages...)
		cfg.AssetPackages = appendUnique(cfg.AssetPackages, f.AssetPackages...)
		cfg.CustomBuildProjectPatterns = appendUnique(cfg.CustomBuildProjectPatterns, f.CustomBuildProjects...)
		cfg.Roots.Libraries = appendUnique(cfg.Roots.Libraries, f.PackageRoots...)
		cfg.Roots.Projects = appendUnique(cfg.Roots.Projects, f.PackageProjectRoots...)
		legacyPlatforms = appendUnique(legacyPlatforms, f.TargetPlatforms...)

		if cfg.EngineSettingsPath == "" {
			cfg.EngineSettingsPath = f.EngineSettingsPath
		}
		if cfg.PackageManagerPath == "" {
			cfg.PackageManagerPath = f.PackageManagerPath
		}

		for _, dto := range f.Targets {
			target, err := parseTarget(dto)
			if err != nil {
				return nil, zerr.With(err, "path", ly.path)
			}
			if !cfg.HasTarget(target) {
				cfg.Targets = append(cfg.Targets, target)
			}
		}

		groupings, err := decodeFolderGroupings(f.FolderGroupings)
		if err != nil {
			return nil, zerr.With(err, "path", ly.path)
		}
		for _, g := range groupings {
			if seenFolders[g.Folder] {
				continue
			}
			seenFolders[g.Folder] = true
			cfg.FolderGroupings = append(cfg.FolderGroupings, g)
		}
	}

	// Legacy platform lists only count when no layer declares targets.
	if len(cfg.Targets) == 0 {
		for _, name := range legacyPlatforms {
			target, err := parseTarget(TargetDTO{Platform: name})
			if err != nil {
				return nil, err
			}
			if !cfg.HasTarget(target) {
				cfg.Targets = append(cfg.Targets, target)
			}
		}
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = []domain.ProjectTarget{domain.NewProjectTarget(domain.DefaultPlatform, "")}
	}

	return cfg, nil
}

func parseTarget(dto TargetDTO) (domain.ProjectTarget, error) {
	platform, err := domain.ParsePlatform(dto.Platform)
	if err != nil {
		return domain.ProjectTarget{}, err
	}
	return domain.NewProjectTarget(platform, dto.Tag), nil
}

// decodeFolderGroupings reads an ordered mapping of folder name to one pattern or a list of patterns.
func decodeFolderGroupings(node *yaml.Node) ([]domain.FolderGrouping, error) {
	if node == nil || node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, domain.Annotate(domain.ErrConfigParseFailed,
			"field", "folderGroupings",
			"line", node.Line,
			"cause", "expected a mapping",
		)
	}

	groupings := make([]domain.FolderGrouping, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var patterns []string
		switch value.Kind {
		case yaml.ScalarNode:
			patterns = []string{value.Value}
		case yaml.SequenceNode:
			if err := value.Decode(&patterns); err != nil {
				return nil, domain.Annotate(domain.ErrConfigParseFailed,
					"field", "folderGroupings."+key.Value,
					"cause", err.Error(),
				)
			}
		default:
			return nil, domain.Annotate(domain.ErrConfigParseFailed,
				"field", "folderGroupings."+key.Value,
				"line", value.Line,
				"cause", "expected a pattern or a list of patterns",
			)
		}
		groupings = append(groupings, domain.FolderGrouping{Folder: key.Value, Patterns: patterns})
	}
	return groupings, nil
}

func expandPaths(cfg *domain.ProjectConfig, paths domain.ProjectPaths) {
	for i, root := range cfg.Roots.Libraries {
		cfg.Roots.Libraries[i] = paths.Expand(root)
	}
	for i, root := range cfg.Roots.Projects {
		cfg.Roots.Projects[i] = paths.Expand(root)
	}
	cfg.EngineSettingsPath = paths.Expand(cfg.EngineSettingsPath)
	cfg.PackageManagerPath = paths.Expand(cfg.PackageManagerPath)
}

// ListProjects returns the sorted names of the directories under projectsDir holding a weave.yaml.
func (l *Loader) ListProjects(projectsDir string) ([]string, error) {
	entries, err := l.FS.ReadDir(projectsDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list projects"), "path", projectsDir)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := l.FS.Stat(filepath.Join(projectsDir, e.Name(), domain.ProjectConfigFileName)); err == nil {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v != "" && !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
