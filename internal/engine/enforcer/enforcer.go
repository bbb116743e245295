// Package enforcer repairs and validates the structural rules of a resolved package graph.
package enforcer

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// Enforcer runs the repair passes and the final validation over a package graph.
// It only ever changes the Tier and GeneratesCustomBuildProject fields of a record,
// apart from the grouped dependency propagation which runs before closures exist.
type Enforcer struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new Enforcer.
func New(fs ports.FileSystem, logger ports.Logger) *Enforcer {
	return &Enforcer{fs: fs, logger: logger}
}

// PropagateGroupedDependencies adds the group-mates of every explicit dependency of a
// package to that package's explicit dependencies. Group-mates of group-mates are not
// followed: the propagation is one level deep.
func (e *Enforcer) PropagateGroupedDependencies(g *domain.Graph) {
	for r := range g.Packages() {
		var mates []string
		for _, dep := range r.ExplicitDependencies {
			child, ok := g.Package(dep)
			if !ok {
				continue
			}
			for _, mate := range child.GroupedDependencies {
				if mate != r.Name {
					mates = append(mates, mate)
				}
			}
		}

		slices.Sort(mates)
		for _, mate := range mates {
			if slices.Contains(r.ExplicitDependencies, mate) {
				continue
			}
			r.ExplicitDependencies = append(r.ExplicitDependencies, mate)
			e.logger.Debug(fmt.Sprintf("added grouped dependency %s to %s", mate, r.Name))
		}
	}
}

// Enforce repairs tier placement and build visibility, then validates the structural rules.
// The graph must have its closures computed.
func (e *Enforcer) Enforce(g *domain.Graph) error {
	e.relocateTiers(g)
	e.propagateVisibility(g)
	e.inferVisibility(g)
	return e.validate(g)
}

// fixedPoint repeats pass until it reports no change. Every pass flips fields in one
// direction only, so limit+1 scans always reach the fixed point.
func fixedPoint(limit int, pass func() bool) {
	for range limit + 1 {
		if !pass() {
			return
		}
	}
}

// relocateTiers moves plugin packages that depend on asset packages to the asset tier.
func (e *Enforcer) relocateTiers(g *domain.Graph) {
	fixedPoint(g.Len(), func() bool {
		changed := false
		for r := range g.Packages() {
			if r.Tier != domain.PluginTier {
				continue
			}
			dep, ok := firstDependency(g, r, func(d *domain.PackageRecord) bool {
				return d.Tier == domain.AssetTier
			})
			if !ok {
				continue
			}
			r.Tier = domain.AssetTier
			changed = true
			e.logger.Debug(fmt.Sprintf("moved %s to asset tier since it depends on asset package %s", r.Name, dep))
		}
		return changed
	})
}

// propagateVisibility marks the explicit dependencies of every package that generates a
// custom build project, following each newly marked package right away.
func (e *Enforcer) propagateVisibility(g *domain.Graph) {
	for r := range g.Packages() {
		if !r.GeneratesCustomBuildProject {
			continue
		}

		stack := []*domain.PackageRecord{r}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, dep := range top.ExplicitDependencies {
				child, ok := g.Package(dep)
				if !ok || child.GeneratesCustomBuildProject {
					continue
				}
				child.GeneratesCustomBuildProject = true
				e.logger.Debug(fmt.Sprintf("generating custom build project for %s since %s depends on it", child.Name, top.Name))
				stack = append(stack, child)
			}
		}
	}
}

// inferVisibility marks every package whose closure contains a marked package.
func (e *Enforcer) inferVisibility(g *domain.Graph) {
	fixedPoint(g.Len(), func() bool {
		changed := false
		for r := range g.Packages() {
			if r.GeneratesCustomBuildProject {
				continue
			}
			dep, ok := firstDependency(g, r, func(d *domain.PackageRecord) bool {
				return d.GeneratesCustomBuildProject
			})
			if !ok {
				continue
			}
			r.GeneratesCustomBuildProject = true
			changed = true
			e.logger.Debug(fmt.Sprintf("generating custom build project for %s since it depends on %s", r.Name, dep))
		}
		return changed
	})
}

// firstDependency returns the lexically first name in the closure of r whose record matches.
func firstDependency(g *domain.Graph, r *domain.PackageRecord, match func(*domain.PackageRecord) bool) (string, bool) {
	for _, name := range r.SortedDependencies() {
		if d, ok := g.Package(name); ok && match(d) {
			return name, true
		}
	}
	return "", false
}

func (e *Enforcer) validate(g *domain.Graph) error {
	for r := range g.Packages() {
		if !e.fs.DirExists(r.HomeDirectory) {
			return domain.Annotate(domain.ErrPackageDirMissing,
				"package", r.Name,
				"path", r.HomeDirectory,
				"referenced_by", r.Provenance,
			)
		}
	}

	for r := range g.Packages() {
		if err := e.validatePackage(g, r); err != nil {
			return err
		}
	}
	return nil
}

func (e *Enforcer) validatePackage(g *domain.Graph, r *domain.PackageRecord) error {
	if r.IsPrebuilt() {
		hasSource, err := e.fs.HasFilesWithExt(r.HomeDirectory, domain.SourceFileExt)
		if err != nil {
			return err
		}
		if hasSource {
			return domain.Annotate(domain.ErrPrebuiltHasSource,
				"package", r.Name,
				"path", r.HomeDirectory,
				"referenced_by", r.Provenance,
			)
		}

		for _, dep := range r.Prebuilt.Dependencies {
			child, ok := g.Package(dep)
			if !ok || child.IsPrebuilt() {
				continue
			}
			return domain.Annotate(domain.ErrPrebuiltDependencyNotPrebuilt,
				"package", r.Name,
				"dependency", dep,
				"referenced_by", r.Provenance,
			)
		}
	}

	if r.ForceTier && r.Tier != domain.PluginTier {
		dep, _ := firstDependency(g, r, func(d *domain.PackageRecord) bool {
			return d.Tier == domain.AssetTier
		})
		return domain.Annotate(domain.ErrForcedTierViolation,
			"package", r.Name,
			"asset_dependency", dep,
			"referenced_by", r.Provenance,
		)
	}

	if r.FolderType == domain.FolderPlatformProject &&
		!e.fs.FileExists(filepath.Join(r.HomeDirectory, domain.PlatformProjectDescriptor)) {
		return domain.Annotate(domain.ErrPlatformProjectInvalid,
			"package", r.Name,
			"path", r.HomeDirectory,
			"referenced_by", r.Provenance,
		)
	}

	return nil
}
