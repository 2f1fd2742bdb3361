// SPDX-License-Identifier: MPL-2.0

// Package launch resolves and runs the built compiler binary.
//
// The profile used for resolution comes from the environment (default
// release), deliberately decoupled from any build-time flag so one build can
// be exercised under either label. The wrapper contributes no output of its
// own and yields exactly the child's exit status.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// ArtifactName is the compiler binary produced by the build phase.
const ArtifactName = "compiler-cli"

// Launcher runs the resolved artifact with inherited or overridden streams.
type Launcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Launcher wired to the process streams.
func New() *Launcher {
	return &Launcher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// ResolvePath returns <base>/target/<profile>/<artifact>. The path is
// computed lazily at launch time; the launcher never creates it — producing
// the artifact is the build phase's responsibility.
func ResolvePath(base, profile string) string {
	return filepath.Join(base, "target", profile, ArtifactName)
}

// Run spawns the artifact resolved from base and profile, forwarding args
// verbatim, and blocks until it terminates. It returns the child's exact
// exit code. A missing or non-executable binary surfaces as the underlying
// start error with no fallback search.
func (l *Launcher) Run(ctx context.Context, base, profile string, args []string) (int, error) {
	bin := ResolvePath(base, profile)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to launch %s: %w", bin, err)
	}
	return 0, nil
}
