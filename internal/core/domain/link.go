package domain

// LinkEntry is one directory link of a materialized project.
type LinkEntry struct {
	// LinkPath is where the link lives.
	LinkPath string
	// Target is the directory the link points to.
	Target string
	// Package is the package the link belongs to, or "" for fixed links.
	Package string
}

// LinkPlan is the complete, ordered set of links a schema materializes into.
type LinkPlan struct {
	PlatformRoot string
	Entries      []LinkEntry
	// Fingerprint identifies the link set; equal plans have equal fingerprints.
	Fingerprint uint64
}

// LinkDrift describes how the links on disk differ from a plan.
type LinkDrift struct {
	Fingerprint uint64
	// Missing links are planned but absent.
	Missing []LinkEntry
	// Stale links exist at a planned path but point elsewhere.
	Stale []LinkEntry
	// Unexpected links exist on disk but are not planned.
	Unexpected []string
}

// InSync reports whether disk matches the plan.
func (d *LinkDrift) InSync() bool {
	return len(d.Missing) == 0 && len(d.Stale) == 0 && len(d.Unexpected) == 0
}
