// SPDX-License-Identifier: MPL-2.0

// Package basedir computes the canonical base directory of the tool.
//
// The installed binary may be reached through several levels of symbolic
// links (e.g., a ~/bin shim pointing into a checkout). All path-relative
// behavior — artifact lookup, corpus location, config discovery — must be
// independent of the invocation path, so the base is always the directory
// containing the real underlying file.
package basedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve dereferences raw one symlink level at a time, resolving relative
// link targets against the link's own directory, until the path is no longer
// a symlink. It returns the absolute directory containing the real file.
func Resolve(raw string) (string, error) {
	path := raw
	for {
		fi, err := os.Lstat(path)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			break
		}
		target, err := os.Readlink(path)
		if err != nil {
			return "", fmt.Errorf("failed to read link %s: %w", path, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	return dir, nil
}

// FromExecutable resolves the base directory of the running binary.
func FromExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return Resolve(exe)
}
