//go:build windows

package fs

import (
	"os/exec"

	"go.trai.ch/zerr"
)

// createLink makes a directory junction, which unlike a symlink needs no elevated privileges.
func createLink(target, linkPath string) error {
	out, err := exec.Command("cmd", "/c", "mklink", "/J", linkPath, target).CombinedOutput() //nolint:gosec // paths come from the resolved schema
	if err != nil {
		return zerr.With(zerr.Wrap(err, "mklink failed"), "output", string(out))
	}
	return nil
}
