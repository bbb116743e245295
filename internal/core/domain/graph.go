// Package domain contains the core domain models and business logic for package dependency resolution.
package domain

import (
	"iter"
	"strings"
)

type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	visited
)

// Graph is the arena of resolved package records, indexed by name.
// Records keep the order they were added in.
type Graph struct {
	records []*PackageRecord
	index   map[string]*PackageRecord
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]*PackageRecord),
	}
}

// AddPackage adds a record to the graph.
// It returns an error if a record with the same name already exists.
func (g *Graph) AddPackage(r *PackageRecord) error {
	if existing, exists := g.index[r.Name]; exists {
		return Annotate(ErrDuplicatePackage,
			"package", r.Name,
			"first_dir", existing.HomeDirectory,
			"second_dir", r.HomeDirectory,
			"referenced_by", r.Provenance,
		)
	}
	g.records = append(g.records, r)
	g.index[r.Name] = r
	return nil
}

// Package returns the record with the given name.
func (g *Graph) Package(name string) (*PackageRecord, bool) {
	r, ok := g.index[name]
	return r, ok
}

// Has reports whether a record with the given name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Len returns the number of records.
func (g *Graph) Len() int {
	return len(g.records)
}

// Packages returns an iterator over the records in insertion order.
func (g *Graph) Packages() iter.Seq[*PackageRecord] {
	return func(yield func(*PackageRecord) bool) {
		for _, r := range g.records {
			if !yield(r) {
				return
			}
		}
	}
}

// ComputeClosures fills AllDependencies of every record with its transitive closure over
// explicit dependencies. Records that already carry a closure are reused, not recomputed.
// Names without a record are part of the closure but are not expanded further.
func (g *Graph) ComputeClosures() error {
	state := make(map[string]visitState, len(g.records))
	for _, r := range g.records {
		if r.AllDependencies != nil {
			state[r.Name] = visited
		}
	}

	for _, r := range g.records {
		if state[r.Name] != unvisited {
			continue
		}
		if err := g.closeFrom(r, state); err != nil {
			return err
		}
	}
	return nil
}

type frame struct {
	record *PackageRecord
	next   int
}

// closeFrom runs an iterative depth-first traversal rooted at root.
func (g *Graph) closeFrom(root *PackageRecord, state map[string]visitState) error {
	stack := []*frame{{record: root}}
	state[root.Name] = inProgress

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		deps := top.record.ExplicitDependencies

		if top.next < len(deps) {
			dep := deps[top.next]
			top.next++

			child, ok := g.index[dep]
			if !ok {
				continue
			}
			switch state[dep] {
			case inProgress:
				return g.buildCycleError(stack, dep)
			case unvisited:
				state[dep] = inProgress
				stack = append(stack, &frame{record: child})
			case visited:
			}
			continue
		}

		closure := make(map[string]struct{}, len(deps))
		for _, dep := range deps {
			closure[dep] = struct{}{}
			if child, ok := g.index[dep]; ok {
				for name := range child.AllDependencies {
					closure[name] = struct{}{}
				}
			}
		}
		top.record.AllDependencies = closure
		state[top.record.Name] = visited
		stack = stack[:len(stack)-1]
	}
	return nil
}

// buildCycleError constructs an error with the current traversal path plus the repeated node.
func (g *Graph) buildCycleError(stack []*frame, dep string) error {
	names := make([]string, 0, len(stack)+1)
	for _, f := range stack {
		names = append(names, f.record.Name)
	}
	names = append(names, dep)

	return Annotate(ErrCircularDependency,
		"cycle", strings.Join(names, " -> "),
		"package", dep,
		"referenced_by", stack[len(stack)-1].record.Name,
	)
}
