//go:build !windows

package fs

import "os"

func createLink(target, linkPath string) error {
	return os.Symlink(target, linkPath)
}
