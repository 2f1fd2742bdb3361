// SPDX-License-Identifier: MPL-2.0

package shellrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner executes steps using the embedded mvdan/sh interpreter.
type VirtualRunner struct {
	// Stdin, Stdout, Stderr are the streams handed to executed commands.
	// Nil fields default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewVirtualRunner creates a runner wired to the process streams.
func NewVirtualRunner() *VirtualRunner {
	return &VirtualRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run parses the step's command line and executes it, blocking until the
// command terminates. The child's exit status is reported in the Result.
func (r *VirtualRunner) Run(ctx context.Context, step Step) *Result {
	prog, err := syntax.NewParser().Parse(strings.NewReader(step.Command), step.Name)
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to parse command: %w", err)}
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(mergedEnviron(step.Env)...)),
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
	}
	if step.Dir != "" {
		opts = append(opts, interp.Dir(step.Dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &Result{ExitCode: ExitCode(exitStatus)}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("command execution failed: %w", err)}
	}

	return &Result{}
}

// mergedEnviron layers the step environment on top of the host environment.
func mergedEnviron(extra map[string]string) []string {
	env := os.Environ()
	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}
