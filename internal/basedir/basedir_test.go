// SPDX-License-Identifier: MPL-2.0

package basedir

import (
	"os"
	"path/filepath"
	"testing"
)

// newFixture creates a real file plus a chain of `levels` symlinks, each in
// its own directory, and returns the outermost path and the real directory.
func newFixture(t *testing.T, levels int) (entry, realDir string) {
	t.Helper()

	root := t.TempDir()
	realDir = filepath.Join(root, "real")
	if err := os.MkdirAll(realDir, 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(realDir, "tool")
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	entry = target
	for i := range levels {
		linkDir := filepath.Join(root, "link", string(rune('a'+i)))
		if err := os.MkdirAll(linkDir, 0o755); err != nil {
			t.Fatal(err)
		}
		link := filepath.Join(linkDir, "tool")
		if err := os.Symlink(entry, link); err != nil {
			t.Fatal(err)
		}
		entry = link
	}
	return entry, realDir
}

func TestResolveSymlinkDepths(t *testing.T) {
	for _, levels := range []int{0, 1, 3} {
		t.Run(map[int]string{0: "no symlink", 1: "one level", 3: "three levels"}[levels], func(t *testing.T) {
			entry, realDir := newFixture(t, levels)

			got, err := Resolve(entry)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", entry, err)
			}
			if got != realDir {
				t.Errorf("Resolve(%q) = %q, want %q", entry, got, realDir)
			}
		})
	}
}

func TestResolveRelativeLinkTarget(t *testing.T) {
	root := t.TempDir()
	realDir := filepath.Join(root, "real")
	if err := os.MkdirAll(realDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(realDir, "tool"), nil, 0o755); err != nil {
		t.Fatal(err)
	}
	// Sibling directory holding a link with a relative target.
	linkDir := filepath.Join(root, "bin")
	if err := os.MkdirAll(linkDir, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(linkDir, "tool")
	if err := os.Symlink(filepath.Join("..", "real", "tool"), link); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(link)
	if err != nil {
		t.Fatalf("Resolve(%q) error: %v", link, err)
	}
	if got != realDir {
		t.Errorf("Resolve(%q) = %q, want %q", link, got, realDir)
	}
}

func TestResolveIndependentOfWorkingDirectory(t *testing.T) {
	entry, realDir := newFixture(t, 1)

	t.Chdir(t.TempDir())

	got, err := Resolve(entry)
	if err != nil {
		t.Fatalf("Resolve(%q) error: %v", entry, err)
	}
	if got != realDir {
		t.Errorf("Resolve(%q) from foreign cwd = %q, want %q", entry, got, realDir)
	}
}

func TestResolveMissingPath(t *testing.T) {
	t.Parallel()

	if _, err := Resolve(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Resolve() of a missing path returned no error")
	}
}
