// Package materializer synchronizes the link tree of a platform root with a resolved schema.
package materializer

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// Materializer turns schemas into directory links.
type Materializer struct {
	fs     ports.FileSystem
	linker ports.Linker
	logger ports.Logger
}

// New creates a new Materializer.
func New(fs ports.FileSystem, linker ports.Linker, logger ports.Logger) *Materializer {
	return &Materializer{fs: fs, linker: linker, logger: logger}
}

// Plan computes the links of the schema, ordered by link path. It touches no disk.
func (m *Materializer) Plan(schema *domain.ProjectSchema, paths domain.ProjectPaths) (*domain.LinkPlan, error) {
	paths = paths.WithTarget(schema.Target())

	entries := []domain.LinkEntry{{
		LinkPath: paths.ProjectSettingsLink(),
		Target:   schema.EngineSettingsPath(),
	}}
	if schema.PackageManagerPath() != "" {
		entries = append(entries, domain.LinkEntry{
			LinkPath: paths.PackagesLink(),
			Target:   schema.PackageManagerPath(),
		})
	}
	for r := range schema.Packages() {
		entries = append(entries, domain.LinkEntry{
			LinkPath: paths.LinkPath(&r),
			Target:   r.HomeDirectory,
			Package:  r.Name,
		})
	}

	slices.SortFunc(entries, func(a, b domain.LinkEntry) int {
		return cmp.Compare(a.LinkPath, b.LinkPath)
	})
	if err := checkOverlaps(entries, paths.PlatformRoot()); err != nil {
		return nil, err
	}

	return &domain.LinkPlan{
		PlatformRoot: paths.PlatformRoot(),
		Entries:      entries,
		Fingerprint:  fingerprint(entries),
	}, nil
}

// checkOverlaps rejects two entries with the same link path and any link path that
// would be created through another link. entries must be sorted.
func checkOverlaps(entries []domain.LinkEntry, root string) error {
	owners := make(map[string]string, len(entries))
	for i, e := range entries {
		if i > 0 && e.LinkPath == entries[i-1].LinkPath {
			return domain.Annotate(domain.ErrLinkCollision,
				"link", e.LinkPath,
				"package", e.Package,
				"other_package", entries[i-1].Package,
			)
		}
		owners[e.LinkPath] = e.Package
	}

	for _, e := range entries {
		for dir := filepath.Dir(e.LinkPath); len(dir) > len(root); dir = filepath.Dir(dir) {
			if owner, ok := owners[dir]; ok {
				return domain.Annotate(domain.ErrLinkCollision,
					"link", e.LinkPath,
					"package", e.Package,
					"enclosing_link", dir,
					"other_package", owner,
				)
			}
		}
	}
	return nil
}

func fingerprint(entries []domain.LinkEntry) uint64 {
	d := xxhash.New()
	for _, e := range entries {
		_, _ = d.WriteString(e.LinkPath)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(e.Target)
		_, _ = d.Write([]byte{'\n'})
	}
	return d.Sum64()
}

// Materialize removes every link under the platform root and recreates the links of the
// schema. The settings and package manager directories must exist before anything is
// removed. A run that fails midway leaves a tree the next run tears down again.
func (m *Materializer) Materialize(schema *domain.ProjectSchema, paths domain.ProjectPaths) (*domain.LinkPlan, error) {
	plan, err := m.Plan(schema, paths)
	if err != nil {
		return nil, err
	}

	for _, e := range plan.Entries {
		if e.Package == "" && !m.fs.DirExists(e.Target) {
			return nil, domain.Annotate(domain.ErrLinkSourceMissing,
				"link", e.LinkPath,
				"source", e.Target,
			)
		}
	}

	if err := m.fs.MkdirAll(plan.PlatformRoot); err != nil {
		return nil, err
	}

	if err := m.teardown(plan.PlatformRoot); err != nil {
		return nil, err
	}

	for _, e := range plan.Entries {
		if m.fs.DirExists(e.LinkPath) || m.fs.FileExists(e.LinkPath) {
			return nil, domain.Annotate(domain.ErrLinkCollision,
				"link", e.LinkPath,
				"package", e.Package,
			)
		}
		if err := m.linker.Create(e.Target, e.LinkPath); err != nil {
			return nil, err
		}
	}

	m.logger.Debug(fmt.Sprintf("created %d link(s) under %s", len(plan.Entries), plan.PlatformRoot))
	return plan, nil
}

// Teardown removes every link under the platform root of paths. Real files and
// directories are left alone.
func (m *Materializer) Teardown(paths domain.ProjectPaths) error {
	return m.teardown(paths.PlatformRoot())
}

// teardown removes every link under root together with the editor's sidecar file of the link.
func (m *Materializer) teardown(root string) error {
	links, err := m.findLinks(root)
	if err != nil {
		return err
	}

	for _, link := range links {
		if err := m.linker.Remove(link); err != nil {
			return err
		}
		if err := m.fs.Remove(link + domain.MetaFileExt); err != nil {
			return err
		}
	}
	if len(links) > 0 {
		m.logger.Debug(fmt.Sprintf("removed %d link(s) under %s", len(links), root))
	}
	return nil
}

// findLinks returns every link below root in lexical order. Links are not descended into.
func (m *Materializer) findLinks(root string) ([]string, error) {
	if !m.fs.DirExists(root) {
		return nil, nil
	}

	var links []string
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		names, err := m.fs.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			path := filepath.Join(dir, name)
			switch {
			case m.linker.IsLink(path):
				links = append(links, path)
			case m.fs.DirExists(path):
				stack = append(stack, path)
			}
		}
	}

	slices.Sort(links)
	return links, nil
}

// Inspect compares the links on disk with the plan of the schema without changing anything.
func (m *Materializer) Inspect(schema *domain.ProjectSchema, paths domain.ProjectPaths) (*domain.LinkDrift, error) {
	plan, err := m.Plan(schema, paths)
	if err != nil {
		return nil, err
	}

	drift := &domain.LinkDrift{Fingerprint: plan.Fingerprint}
	planned := make(map[string]struct{}, len(plan.Entries))

	for _, e := range plan.Entries {
		planned[e.LinkPath] = struct{}{}

		if !m.linker.IsLink(e.LinkPath) {
			drift.Missing = append(drift.Missing, e)
			continue
		}
		target, err := m.linker.Target(e.LinkPath)
		if err != nil {
			return nil, err
		}
		if filepath.Clean(target) != filepath.Clean(e.Target) {
			drift.Stale = append(drift.Stale, e)
		}
	}

	links, err := m.findLinks(plan.PlatformRoot)
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		if _, ok := planned[link]; !ok {
			drift.Unexpected = append(drift.Unexpected, link)
		}
	}

	return drift, nil
}
