package domain

import (
	"path/filepath"
	"strings"
)

// Path tokens accepted in config path values.
const (
	TokenProjectsDir  = "[ProjectsDir]"
	TokenProjectRoot  = "[ProjectRoot]"
	TokenProjectName  = "[ProjectName]"
	TokenPlatform     = "[Platform]"
	TokenPlatformRoot = "[PlatformRoot]"
)

// ProjectPaths is the immutable path context of one project target.
type ProjectPaths struct {
	projectsDir string
	projectName string
	target      ProjectTarget
}

// NewProjectPaths creates the path context for a project target.
func NewProjectPaths(projectsDir, projectName string, target ProjectTarget) ProjectPaths {
	return ProjectPaths{
		projectsDir: filepath.Clean(projectsDir),
		projectName: projectName,
		target:      target,
	}
}

// ProjectsDir returns the directory holding every project.
func (p ProjectPaths) ProjectsDir() string { return p.projectsDir }

// ProjectName returns the project name.
func (p ProjectPaths) ProjectName() string { return p.projectName }

// Target returns the project target.
func (p ProjectPaths) Target() ProjectTarget { return p.target }

// WithTarget returns a copy of the context for another target of the same project.
func (p ProjectPaths) WithTarget(t ProjectTarget) ProjectPaths {
	p.target = t
	return p
}

// ProjectRoot returns the project directory.
func (p ProjectPaths) ProjectRoot() string {
	return filepath.Join(p.projectsDir, p.projectName)
}

// ProjectConfigPath returns the shared project config file.
func (p ProjectPaths) ProjectConfigPath() string {
	return filepath.Join(p.ProjectRoot(), ProjectConfigFileName)
}

// ProjectUserConfigPath returns the per-user project config override.
func (p ProjectPaths) ProjectUserConfigPath() string {
	return filepath.Join(p.ProjectRoot(), ProjectUserConfigFileName)
}

// GlobalConfigPath returns the config shared by every project.
func (p ProjectPaths) GlobalConfigPath() string {
	return filepath.Join(p.projectsDir, ProjectConfigFileName)
}

// GlobalUserConfigPath returns the per-user config shared by every project.
func (p ProjectPaths) GlobalUserConfigPath() string {
	return filepath.Join(p.projectsDir, ProjectUserConfigFileName)
}

// ConfigLayers returns every config file of the project in precedence order.
func (p ProjectPaths) ConfigLayers() []string {
	return []string{
		p.ProjectConfigPath(),
		p.ProjectUserConfigPath(),
		p.GlobalConfigPath(),
		p.GlobalUserConfigPath(),
	}
}

// PlatformRoot returns the editor project directory of the target.
func (p ProjectPaths) PlatformRoot() string {
	return filepath.Join(p.ProjectRoot(), p.projectName+"-"+p.target.FolderName())
}

// AssetsDir returns the asset directory of the target.
func (p ProjectPaths) AssetsDir() string {
	return filepath.Join(p.PlatformRoot(), AssetsDirName)
}

// PluginsDir returns the plugin directory of the target.
func (p ProjectPaths) PluginsDir() string {
	return filepath.Join(p.AssetsDir(), PluginsDirName)
}

// ProjectSettingsLink returns the link path of the engine settings directory.
func (p ProjectPaths) ProjectSettingsLink() string {
	return filepath.Join(p.PlatformRoot(), ProjectSettingsDirName)
}

// PackagesLink returns the link path of the package manager directory.
func (p ProjectPaths) PackagesLink() string {
	return filepath.Join(p.PlatformRoot(), PackagesDirName)
}

// SolutionPath returns the IDE solution generated for the target.
func (p ProjectPaths) SolutionPath() string {
	return filepath.Join(p.ProjectRoot(), p.SolutionBaseName()+".sln")
}

// SolutionBaseName returns the file name prefix of every generated solution file.
func (p ProjectPaths) SolutionBaseName() string {
	return p.projectName + "-" + p.target.FolderName()
}

// OutputRoot returns the directory a package of the folder type and tier is linked into.
func (p ProjectPaths) OutputRoot(ft FolderType, tier Tier) string {
	plugins := p.PluginsDir()
	switch ft {
	case FolderPlatformProject:
		return filepath.Join(plugins, "Android")
	case FolderPlatformLibraries:
		return filepath.Join(plugins, "Android", "libs")
	case FolderMobileLibrary:
		return filepath.Join(plugins, "iOS")
	case FolderWebLibrary:
		return filepath.Join(plugins, "WebGL")
	case FolderStreamingAssets:
		return filepath.Join(p.AssetsDir(), "StreamingAssets")
	case FolderEditorGizmos:
		return filepath.Join(p.AssetsDir(), "Gizmos")
	}
	if tier == AssetTier {
		return p.AssetsDir()
	}
	return plugins
}

// LinkPath returns where a package record is linked.
func (p ProjectPaths) LinkPath(r *PackageRecord) string {
	return filepath.Join(p.OutputRoot(r.FolderType, r.Tier), r.Name)
}

// Expand substitutes path tokens and makes relative results absolute against the project root.
func (p ProjectPaths) Expand(value string) string {
	if value == "" {
		return ""
	}
	r := strings.NewReplacer(
		TokenProjectsDir, p.projectsDir,
		TokenProjectRoot, p.ProjectRoot(),
		TokenProjectName, p.projectName,
		TokenPlatformRoot, p.PlatformRoot(),
		TokenPlatform, string(p.target.Platform),
	)
	expanded := filepath.FromSlash(r.Replace(value))
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(p.ProjectRoot(), expanded)
	}
	return filepath.Clean(expanded)
}
