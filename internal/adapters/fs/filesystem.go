package fs

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	walker *Walker
	retry  domain.RetryPolicy
	sleep  func(time.Duration)
}

// NewFileSystem creates a FileSystem that retries locked removals with the given policy.
func NewFileSystem(walker *Walker, retry domain.RetryPolicy) *FileSystem {
	return &FileSystem{
		walker: walker,
		retry:  retry,
		sleep:  time.Sleep,
	}
}

// DirExists reports whether path is an existing directory.
func (f *FileSystem) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path is an existing regular file.
func (f *FileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// ReadDir returns the entry names of dir in lexical order.
func (f *FileSystem) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// HasFilesWithExt reports whether any file anywhere under dir has the extension, build
// output and cache directories included. Matching ignores case.
func (f *FileSystem) HasFilesWithExt(dir, ext string) (bool, error) {
	if !f.DirExists(dir) {
		return false, zerr.With(zerr.Wrap(fs.ErrNotExist, "failed to scan directory"), "path", dir)
	}
	for path := range f.walker.WalkFiles(dir, nil) {
		if strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
			return true, nil
		}
	}
	return false, nil
}

// Remove deletes a single file. Missing files are not an error.
func (f *FileSystem) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}

// RemoveAll deletes a directory tree. Failures are retried with a fixed backoff,
// since another process may briefly hold a handle inside the tree.
func (f *FileSystem) RemoveAll(path string) error {
	attempts := max(f.retry.Attempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = os.RemoveAll(path)
		if lastErr == nil {
			return nil
		}
		if attempt < attempts {
			f.sleep(f.retry.Backoff)
		}
	}

	return domain.Annotate(domain.ErrLockedResource,
		"path", path,
		"attempts", attempts,
		"cause", lastErr.Error(),
	)
}

// CopyDir copies the directory tree at src into dst.
func (f *FileSystem) CopyDir(src, dst string) error {
	if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to copy directory"), "source", src), "destination", dst)
	}
	return nil
}
