// SPDX-License-Identifier: MPL-2.0

package shellrun

import "context"

type (
	// Step is one external command to execute. Command is a full shell
	// command line, logged verbatim before execution so a failing step can
	// be reproduced by hand.
	Step struct {
		// Name identifies the step in logs (e.g., "build", "mjtest").
		Name string
		// Command is the shell command line to run.
		Command string
		// Dir is the working directory. Empty means the current directory.
		Dir string
		// Env holds additional environment variables for this step only.
		// They are layered on top of the host environment.
		Env map[string]string
	}

	// Result is the outcome of a single step.
	Result struct {
		ExitCode ExitCode
		// Error is set only for infrastructure failures (unparseable
		// command, interpreter setup); a plain non-zero exit leaves it nil.
		Error error
	}

	// Runner executes steps one at a time, blocking until each terminates.
	Runner interface {
		Run(ctx context.Context, step Step) *Result
	}
)

// Failed reports whether the step must abort the surrounding chain.
func (r *Result) Failed() bool {
	return r.Error != nil || !r.ExitCode.IsSuccess()
}
