// Package resolver expands a project config into a package graph and resolves it into a schema.
package resolver

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// ConfigProvenance is the provenance of the packages listed in the project config.
const ConfigProvenance = "project config (weave.yaml or weave.user.yaml)"

// Expansion is the package graph reached from a project config.
type Expansion struct {
	Graph *domain.Graph
	// Dropped holds the names excluded by platform filtering.
	Dropped map[string]struct{}
}

// IsDropped reports whether name was excluded by platform filtering.
func (e *Expansion) IsDropped(name string) bool {
	_, ok := e.Dropped[name]
	return ok
}

// Builder expands package references into a graph of package records.
type Builder struct {
	catalog ports.PackageCatalog
	logger  ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(catalog ports.PackageCatalog, logger ports.Logger) *Builder {
	return &Builder{catalog: catalog, logger: logger}
}

// Expand resolves every package reachable from the config's plugin and asset packages.
// References are processed breadth-first and each name is resolved at most once.
// Packages not enabled for the platform are left out of the graph.
func (b *Builder) Expand(cfg *domain.ProjectConfig, platform domain.Platform) (*Expansion, error) {
	for _, name := range cfg.PluginPackages {
		if slices.Contains(cfg.AssetPackages, name) {
			return nil, domain.Annotate(domain.ErrPackageInBothTiers,
				"package", name,
				"referenced_by", ConfigProvenance,
			)
		}
	}

	exp := &Expansion{
		Graph:   domain.NewGraph(),
		Dropped: make(map[string]struct{}),
	}

	seen := make(map[string]struct{})
	var queue []domain.PackageReference
	enqueue := func(requester, provenance string, names ...string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			queue = append(queue, domain.PackageReference{
				Name:        name,
				RequestedBy: requester,
				Provenance:  provenance,
			})
		}
	}

	enqueue("", ConfigProvenance, cfg.PluginPackages...)
	enqueue("", ConfigProvenance, cfg.AssetPackages...)

	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]

		record, meta, err := b.resolve(ref, cfg, platform)
		if err != nil {
			return nil, err
		}
		if record == nil {
			exp.Dropped[ref.Name] = struct{}{}
			continue
		}
		if err := exp.Graph.AddPackage(record); err != nil {
			return nil, err
		}

		provenance := meta.ConfigPath
		if provenance == "" {
			provenance = record.HomeDirectory
		}
		enqueue(record.Name, provenance, record.ExplicitDependencies...)
		enqueue(record.Name, provenance, record.GroupedDependencies...)
		enqueue(record.Name, provenance, record.ExtraDependencies...)
	}

	return exp, nil
}

// resolve builds the record of one reference. It returns a nil record when the package
// is not enabled for the platform.
func (b *Builder) resolve(
	ref domain.PackageReference,
	cfg *domain.ProjectConfig,
	platform domain.Platform,
) (*domain.PackageRecord, *domain.PackageMetadata, error) {
	dir, err := b.catalog.Resolve(ref.Name, cfg.Roots)
	if err != nil {
		err = zerr.With(err, "referenced_by", ref.Provenance)
		if ref.RequestedBy != "" {
			err = zerr.With(err, "requested_by", ref.RequestedBy)
		}
		return nil, nil, err
	}

	meta, err := b.catalog.LoadMetadata(dir)
	if err != nil {
		return nil, nil, zerr.With(zerr.With(err, "package", ref.Name), "referenced_by", ref.Provenance)
	}

	if !meta.AllowsPlatform(platform) {
		b.logger.Debug(fmt.Sprintf("skipping package %s since it is not enabled for platform %s", ref.Name, platform))
		return nil, nil, nil
	}

	prebuilt, err := b.catalog.LoadPrebuilt(ref.Name, dir, meta)
	if err != nil {
		return nil, nil, zerr.With(zerr.With(err, "package", ref.Name), "referenced_by", ref.Provenance)
	}

	explicit := slices.Clone(meta.Dependencies)
	if prebuilt != nil {
		for _, dep := range prebuilt.Dependencies {
			if !slices.Contains(explicit, dep) {
				explicit = append(explicit, dep)
			}
		}
	}

	tier := domain.PluginTier
	if meta.ForceAssetTier || slices.Contains(cfg.AssetPackages, ref.Name) {
		tier = domain.AssetTier
	}

	return &domain.PackageRecord{
		Name:                 ref.Name,
		HomeDirectory:        dir,
		FolderType:           meta.FolderType,
		Tier:                 tier,
		ForceTier:            meta.ForcePluginTier,
		ExplicitDependencies: explicit,
		GroupedDependencies:  slices.Clone(meta.GroupedDependencies),
		ExtraDependencies:    slices.Clone(meta.ExtraDependencies),
		Prebuilt:             prebuilt,
		Provenance:           ref.Provenance,
	}, meta, nil
}

// MarkCustomProjects marks the packages that generate a custom build project.
// A pattern is a package name, or a regular expression matched against the start of
// every package name when prefixed with "/".
func (b *Builder) MarkCustomProjects(exp *Expansion, patterns []string) error {
	for _, pattern := range patterns {
		if expr, ok := strings.CutPrefix(pattern, domain.CustomProjectRegexPrefix); ok {
			re, err := regexp.Compile("^(?:" + expr + ")")
			if err != nil {
				return domain.Annotate(domain.ErrInvalidProjectPattern,
					"pattern", pattern,
					"cause", err.Error(),
				)
			}
			for r := range exp.Graph.Packages() {
				if re.MatchString(r.Name) {
					r.GeneratesCustomBuildProject = true
				}
			}
			continue
		}

		if r, ok := exp.Graph.Package(pattern); ok {
			r.GeneratesCustomBuildProject = true
			continue
		}
		if exp.IsDropped(pattern) {
			continue
		}
		return domain.Annotate(domain.ErrUnknownCustomProject,
			"package", pattern,
			"referenced_by", ConfigProvenance,
		)
	}
	return nil
}
