package ports

// Linker is the directory link primitive. Every operation is treated as atomic.
//
//go:generate mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	// Create makes linkPath a directory link pointing at target.
	Create(target, linkPath string) error
	// Remove deletes the link at linkPath without touching its target.
	Remove(linkPath string) error
	// IsLink reports whether path is a directory link.
	IsLink(path string) bool
	// Target returns the directory a link points at.
	Target(linkPath string) (string, error)
}
