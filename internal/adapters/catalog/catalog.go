// Package catalog locates packages in the search roots and reads their metadata.
package catalog

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/weave/internal/adapters/config"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultCacheSize bounds the number of package directories whose metadata is kept.
const DefaultCacheSize = 1024

var _ ports.PackageCatalog = (*Catalog)(nil)

type cachedMetadata struct {
	modTime time.Time
	size    int64
	meta    *domain.PackageMetadata
}

// Catalog implements ports.PackageCatalog on package directories.
type Catalog struct {
	fs     config.FileSystem
	logger ports.Logger
	cache  *lru.Cache[string, cachedMetadata]
}

// New creates a Catalog caching the metadata of up to cacheSize packages.
func New(fsys config.FileSystem, logger ports.Logger, cacheSize int) (*Catalog, error) {
	cache, err := lru.New[string, cachedMetadata](cacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create metadata cache")
	}
	return &Catalog{fs: fsys, logger: logger, cache: cache}, nil
}

// Resolve returns the home directory of a package. Library roots are searched before
// project roots and the first match wins.
func (c *Catalog) Resolve(name string, roots domain.SearchRoots) (string, error) {
	for _, root := range roots.Libraries {
		if dir := filepath.Join(root, name); c.isDir(dir) {
			return dir, nil
		}
	}
	for _, root := range roots.Projects {
		if dir := projectPackageDir(root, name); c.isDir(dir) {
			return dir, nil
		}
	}
	return "", domain.Annotate(domain.ErrPackageNotFound, "package", name)
}

// ListPackages returns the sorted names of every package found in the roots.
func (c *Catalog) ListPackages(roots domain.SearchRoots) ([]string, error) {
	var names []string
	add := func(name string) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	for _, root := range roots.Libraries {
		entries, err := c.fs.ReadDir(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list package root"), "path", root)
		}
		for _, e := range entries {
			if e.IsDir() {
				add(e.Name())
			}
		}
	}
	for _, root := range roots.Projects {
		entries, err := c.fs.ReadDir(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list package project root"), "path", root)
		}
		for _, e := range entries {
			if e.IsDir() && c.isDir(projectPackageDir(root, e.Name())) {
				add(e.Name())
			}
		}
	}

	slices.Sort(names)
	return names, nil
}

// LoadMetadata decodes dir/weave.package.yaml. A missing file yields the defaults.
// Decoded metadata is cached until the file's size or modification time changes.
func (c *Catalog) LoadMetadata(dir string) (*domain.PackageMetadata, error) {
	path := filepath.Join(dir, domain.PackageConfigFileName)

	info, err := c.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.PackageMetadata{}, nil
		}
		return nil, domain.Annotate(domain.ErrConfigReadFailed, "path", path, "cause", err.Error())
	}

	if cached, ok := c.cache.Get(dir); ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cloneMetadata(cached.meta), nil
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, domain.Annotate(domain.ErrConfigReadFailed, "path", path, "cause", err.Error())
	}

	var dto PackageFile
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, domain.Annotate(domain.ErrConfigParseFailed, "path", path, "cause", err.Error())
	}

	meta, err := toMetadata(&dto, path)
	if err != nil {
		return nil, err
	}

	c.cache.Add(dir, cachedMetadata{modTime: info.ModTime(), size: info.Size(), meta: meta})
	c.logger.Debug("read package config " + path)
	return cloneMetadata(meta), nil
}

func toMetadata(dto *PackageFile, path string) (*domain.PackageMetadata, error) {
	folderType, err := domain.ParseFolderType(dto.FolderType)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	meta := &domain.PackageMetadata{
		FolderType:          folderType,
		Dependencies:        dto.Dependencies,
		GroupedDependencies: dto.GroupWith,
		ExtraDependencies:   dto.Extras,
		ForcePluginTier:     dto.ForcePluginTier,
		ForceAssetTier:      dto.ForceAssetTier,
		ConfigPath:          path,
	}

	for _, name := range dto.Platforms {
		p, err := domain.ParsePlatform(name)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		meta.Platforms = append(meta.Platforms, p)
	}

	if dto.PrebuiltProject != nil {
		if dto.PrebuiltProject.Path == "" {
			return nil, domain.Annotate(domain.ErrMissingConfigField, "field", "prebuiltProject.path", "path", path)
		}
		meta.PrebuiltPath = filepath.FromSlash(dto.PrebuiltProject.Path)
		meta.PrebuiltConfig = dto.PrebuiltProject.Config
	}

	return meta, nil
}

func cloneMetadata(m *domain.PackageMetadata) *domain.PackageMetadata {
	c := *m
	c.Dependencies = slices.Clone(m.Dependencies)
	c.GroupedDependencies = slices.Clone(m.GroupedDependencies)
	c.ExtraDependencies = slices.Clone(m.ExtraDependencies)
	c.Platforms = slices.Clone(m.Platforms)
	return &c
}

func (c *Catalog) isDir(path string) bool {
	info, err := c.fs.Stat(path)
	return err == nil && info.IsDir()
}

// projectPackageDir returns where a package lives inside a package project root.
func projectPackageDir(root, name string) string {
	return filepath.Join(root, name, domain.AssetsDirName, domain.PluginsDirName, name)
}
