package ports

// FileSystem defines the filesystem operations used by the engine.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// DirExists reports whether path is an existing directory.
	DirExists(path string) bool
	// FileExists reports whether path is an existing regular file.
	FileExists(path string) bool
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// ReadDir returns the names of the entries of dir in lexical order.
	ReadDir(dir string) ([]string, error)
	// HasFilesWithExt reports whether any file under dir has the extension, searching recursively.
	HasFilesWithExt(dir, ext string) (bool, error)
	// Remove deletes a single file. Missing files are not an error.
	Remove(path string) error
	// RemoveAll deletes a directory tree, retrying while it is locked.
	// It returns domain.ErrLockedResource once the retry budget is spent.
	RemoveAll(path string) error
	// CopyDir copies a directory tree.
	CopyDir(src, dst string) error
}
