package domain

import "slices"

// SearchRoots are the directories a package name is resolved against.
type SearchRoots struct {
	// Libraries are flat roots: a package lives at root/name.
	Libraries []string
	// Projects are nested roots: a package lives at root/name/Assets/Plugins/name.
	Projects []string
}

// FolderGrouping maps a solution folder name to the package patterns it contains.
type FolderGrouping struct {
	Folder   string
	Patterns []string
}

// ProjectConfig is the merged project configuration. It is immutable once loaded.
type ProjectConfig struct {
	ProjectName string

	Roots SearchRoots

	PluginPackages             []string
	AssetPackages              []string
	CustomBuildProjectPatterns []string
	FolderGroupings            []FolderGrouping
	Targets                    []ProjectTarget

	EngineSettingsPath string
	PackageManagerPath string

	// Sources lists the config files that contributed to this config, in precedence order.
	Sources []string
}

// HasTarget reports whether the target is already declared.
func (c *ProjectConfig) HasTarget(t ProjectTarget) bool {
	return slices.Contains(c.Targets, t)
}

// ListsPackage reports whether name is an explicit plugin or asset package.
func (c *ProjectConfig) ListsPackage(name string) bool {
	return slices.Contains(c.PluginPackages, name) || slices.Contains(c.AssetPackages, name)
}
