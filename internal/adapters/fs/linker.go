package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

var _ ports.Linker = (*Linker)(nil)

// Linker implements ports.Linker with symlinks, or directory junctions on Windows.
type Linker struct{}

// NewLinker creates a new Linker.
func NewLinker() *Linker {
	return &Linker{}
}

// Create makes linkPath point at target, creating missing parent directories.
func (l *Linker) Create(target, linkPath string) error {
	if err := os.MkdirAll(filepath.Dir(linkPath), domain.DirPerm); err != nil {
		return linkError(err, target, linkPath)
	}
	if err := createLink(target, linkPath); err != nil {
		return linkError(err, target, linkPath)
	}
	return nil
}

// Remove deletes the link itself. The target directory is left untouched.
func (l *Linker) Remove(linkPath string) error {
	if !l.IsLink(linkPath) {
		return domain.Annotate(domain.ErrLinkFailed, "link", linkPath, "cause", "not a link")
	}
	if err := os.Remove(linkPath); err != nil {
		return linkError(err, "", linkPath)
	}
	return nil
}

// IsLink reports whether path is a symlink or junction.
func (l *Linker) IsLink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&(os.ModeSymlink|os.ModeIrregular) != 0
}

// Target returns the directory the link at linkPath points at.
func (l *Linker) Target(linkPath string) (string, error) {
	target, err := os.Readlink(linkPath)
	if err != nil {
		return "", linkError(err, "", linkPath)
	}
	return filepath.Clean(target), nil
}

func linkError(err error, target, linkPath string) error {
	kv := []any{"link", linkPath, "cause", err.Error()}
	if target != "" {
		kv = append(kv, "target", target)
	}
	return domain.Annotate(domain.ErrLinkFailed, kv...)
}
