package config

import "gopkg.in/yaml.v3"

// ProjectFile represents the structure of one weave.yaml or weave.user.yaml layer.
type ProjectFile struct {
	PluginPackages      []string    `yaml:"pluginPackages,omitempty"`
	AssetPackages       []string    `yaml:"assetPackages,omitempty"`
	CustomBuildProjects []string    `yaml:"customBuildProjects,omitempty"`
	FolderGroupings     *yaml.Node  `yaml:"folderGroupings,omitempty"`
	PackageRoots        []string    `yaml:"packageRoots,omitempty"`
	PackageProjectRoots []string    `yaml:"packageProjectRoots,omitempty"`
	TargetPlatforms     []string    `yaml:"targetPlatforms,omitempty"`
	Targets             []TargetDTO `yaml:"targets,omitempty"`
	EngineSettingsPath  string      `yaml:"engineSettingsPath,omitempty"`
	PackageManagerPath  string      `yaml:"packageManagerPath,omitempty"`
}

// TargetDTO represents a target entry in the configuration.
type TargetDTO struct {
	Platform string `yaml:"platform"`
	Tag      string `yaml:"tag,omitempty"`
}
