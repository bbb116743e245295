package domain

import (
	"iter"
	"path"
	"slices"
)

// ProjectSchema is the immutable result of resolving a project target.
type ProjectSchema struct {
	projectName        string
	packages           map[string]*PackageRecord
	names              []string
	folderGroupings    []FolderGrouping
	engineSettingsPath string
	packageManagerPath string
	target             ProjectTarget
	allTargets         []ProjectTarget
}

// NewProjectSchema snapshots a fully enforced graph into a schema.
// The schema holds copies of the records, so later graph mutation cannot leak into it.
func NewProjectSchema(cfg *ProjectConfig, g *Graph, target ProjectTarget) *ProjectSchema {
	s := &ProjectSchema{
		projectName:        cfg.ProjectName,
		packages:           make(map[string]*PackageRecord, g.Len()),
		names:              make([]string, 0, g.Len()),
		folderGroupings:    slices.Clone(cfg.FolderGroupings),
		engineSettingsPath: cfg.EngineSettingsPath,
		packageManagerPath: cfg.PackageManagerPath,
		target:             target,
		allTargets:         slices.Clone(cfg.Targets),
	}
	for r := range g.Packages() {
		s.packages[r.Name] = r.clone()
		s.names = append(s.names, r.Name)
	}
	slices.Sort(s.names)
	return s
}

// ProjectName returns the project name.
func (s *ProjectSchema) ProjectName() string { return s.projectName }

// Target returns the target the schema was resolved for.
func (s *ProjectSchema) Target() ProjectTarget { return s.target }

// AllTargets returns every target declared by the project.
func (s *ProjectSchema) AllTargets() []ProjectTarget { return slices.Clone(s.allTargets) }

// EngineSettingsPath returns the absolute source of the engine settings link.
func (s *ProjectSchema) EngineSettingsPath() string { return s.engineSettingsPath }

// PackageManagerPath returns the absolute source of the package manager link, or "".
func (s *ProjectSchema) PackageManagerPath() string { return s.packageManagerPath }

// SolutionFolder is a solution folder with the packages placed in it.
type SolutionFolder struct {
	Folder   string
	Packages []string
}

// SolutionFolders places every package in the first folder grouping with a glob pattern
// matching its name. Folders keep their configured order and empty folders are left out.
func (s *ProjectSchema) SolutionFolders() []SolutionFolder {
	byFolder := make(map[string][]string)
	for _, name := range s.names {
		if folder, ok := s.folderOf(name); ok {
			byFolder[folder] = append(byFolder[folder], name)
		}
	}

	var folders []SolutionFolder
	for _, g := range s.folderGroupings {
		if names := byFolder[g.Folder]; len(names) > 0 {
			folders = append(folders, SolutionFolder{Folder: g.Folder, Packages: names})
		}
	}
	return folders
}

func (s *ProjectSchema) folderOf(name string) (string, bool) {
	for _, g := range s.folderGroupings {
		for _, pattern := range g.Patterns {
			if ok, _ := path.Match(pattern, name); ok {
				return g.Folder, true
			}
		}
	}
	return "", false
}

// Len returns the number of packages.
func (s *ProjectSchema) Len() int { return len(s.names) }

// PackageNames returns the package names in lexical order.
func (s *ProjectSchema) PackageNames() []string { return slices.Clone(s.names) }

// Package returns a copy of the named record.
func (s *ProjectSchema) Package(name string) (PackageRecord, bool) {
	r, ok := s.packages[name]
	if !ok {
		return PackageRecord{}, false
	}
	return *r.clone(), true
}

// Packages iterates over copies of the records in lexical order.
func (s *ProjectSchema) Packages() iter.Seq[PackageRecord] {
	return func(yield func(PackageRecord) bool) {
		for _, name := range s.names {
			if !yield(*s.packages[name].clone()) {
				return
			}
		}
	}
}
