package app

import (
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/ui/style"
)

// DependencyTree resolves a project target and renders its packages as an indented tree.
// A nil target uses the first configured target.
func (a *App) DependencyTree(project string, target *domain.ProjectTarget) ([]string, error) {
	schema, err := a.resolveOne(project, target)
	if err != nil {
		return nil, err
	}
	return RenderTree(schema), nil
}

// SolutionFolders resolves a project target and returns the solution folders its folder
// groupings place the packages in. A nil target uses the first configured target.
func (a *App) SolutionFolders(project string, target *domain.ProjectTarget) ([]domain.SolutionFolder, error) {
	schema, err := a.resolveOne(project, target)
	if err != nil {
		return nil, err
	}
	return schema.SolutionFolders(), nil
}

func (a *App) resolveOne(project string, target *domain.ProjectTarget) (*domain.ProjectSchema, error) {
	cfg, paths, err := a.loadConfig(project)
	if err != nil {
		return nil, err
	}

	t := domain.NewProjectTarget(domain.DefaultPlatform, "")
	switch {
	case target != nil:
		t = *target
	case len(cfg.Targets) > 0:
		t = cfg.Targets[0]
	}

	return a.schemas.LoadSchema(paths.WithTarget(t))
}

// RenderTree renders the packages of a schema. Asset packages come first, then packages
// with more explicit dependencies. Each package is expanded once; later references are
// marked as revisits.
func RenderTree(schema *domain.ProjectSchema) []string {
	records := slices.Collect(schema.Packages())
	slices.SortStableFunc(records, func(a, b domain.PackageRecord) int {
		if c := cmp.Compare(tierRank(a.Tier), tierRank(b.Tier)); c != 0 {
			return c
		}
		return cmp.Compare(len(b.ExplicitDependencies), len(a.ExplicitDependencies))
	})

	p := &treePrinter{schema: schema, done: make(map[string]bool, len(records))}
	for _, r := range records {
		if p.done[r.Name] {
			continue
		}
		p.print(r, 1)
	}
	return p.lines
}

func tierRank(t domain.Tier) int {
	if t == domain.AssetTier {
		return 0
	}
	return 1
}

type treePrinter struct {
	schema *domain.ProjectSchema
	done   map[string]bool
	lines  []string
}

func (p *treePrinter) print(r domain.PackageRecord, depth int) {
	indent := strings.Repeat(style.Indent+".", depth-1) + style.Indent
	p.lines = append(p.lines, indent+style.Branch+r.Name)
	p.done[r.Name] = true

	for _, dep := range r.ExplicitDependencies {
		child, ok := p.schema.Package(dep)
		if !ok {
			continue
		}
		if p.done[dep] {
			p.lines = append(p.lines, indent+"."+style.Indent+style.Revisit+dep)
			continue
		}
		p.print(child, depth+1)
	}
}
