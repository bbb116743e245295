package domain

// ProjectTarget identifies one platform/variant combination of a project.
// It is comparable and used directly as a deduplication key.
type ProjectTarget struct {
	Platform Platform
	Tag      string
}

// NewProjectTarget creates a target for the platform with an optional tag.
func NewProjectTarget(p Platform, tag string) ProjectTarget {
	return ProjectTarget{Platform: p, Tag: tag}
}

// FolderName returns the suffix used for the target's output folder.
func (t ProjectTarget) FolderName() string {
	if t.Tag == "" {
		return string(t.Platform)
	}
	return string(t.Platform) + "-" + t.Tag
}

// DisplayName returns a human-readable name of the target.
func (t ProjectTarget) DisplayName() string {
	if t.Tag == "" {
		return string(t.Platform)
	}
	return string(t.Platform) + "; " + t.Tag
}

// String implements fmt.Stringer.
func (t ProjectTarget) String() string {
	return t.DisplayName()
}
