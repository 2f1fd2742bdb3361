// SPDX-License-Identifier: MPL-2.0

// Package phase runs the fixed build phase sequence for one driver
// invocation: clean → fmt-check → lint → build → test → check.
//
// Phases are independent toggles, but their order is fixed: later phases
// depend on artifacts or diagnostics from earlier ones. Execution is strictly
// sequential and fail-fast; a disabled phase is logged as skipped so operators
// can tell "not run" from "ran and passed".
package phase

import (
	"context"
	"fmt"
	"os"

	"github.com/flip1995/comprakt/internal/buildcfg"
	"github.com/flip1995/comprakt/internal/shellrun"

	"github.com/charmbracelet/log"
)

type (
	// Phase is one independently toggleable build or quality-gate step.
	Phase struct {
		Name    string
		Enabled bool
		Command string
	}

	// StepError reports the phase whose command exited non-zero.
	StepError struct {
		Phase string
		Code  shellrun.ExitCode
		Cause error
	}

	// Runner executes the phase sequence through a shellrun.Runner.
	Runner struct {
		Exec   shellrun.Runner
		Logger *log.Logger
		// Dir is the directory phases run in, normally the canonical base.
		Dir string
	}
)

// Error implements the error interface.
func (e *StepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("phase %s failed: %v", e.Phase, e.Cause)
	}
	return fmt.Sprintf("phase %s failed with exit status %d", e.Phase, e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *StepError) Unwrap() error { return e.Cause }

// Sequence derives the fixed, ordered phase list from the configuration.
// Commands target the cargo toolchain; the profile flag follows cargo's
// convention of release being opt-in.
func Sequence(cfg buildcfg.Config) []Phase {
	return []Phase{
		{Name: "clean", Enabled: cfg.Clean, Command: "cargo clean"},
		{Name: "fmt-check", Enabled: cfg.FmtCheck, Command: "cargo fmt --all -- --check"},
		{Name: "lint", Enabled: cfg.Lint, Command: "cargo clippy --all-targets -- -D warnings"},
		{Name: "build", Enabled: cfg.Build, Command: "cargo build" + profileFlag(cfg.Profile)},
		{Name: "test", Enabled: cfg.Test, Command: "cargo test" + profileFlag(cfg.Profile)},
		{Name: "check", Enabled: cfg.Check, Command: "cargo check" + profileFlag(cfg.Profile)},
	}
}

func profileFlag(p buildcfg.Profile) string {
	if p == buildcfg.ProfileRelease {
		return " --release"
	}
	return ""
}

// NewRunner creates a Runner executing phases in dir.
func NewRunner(exec shellrun.Runner, dir string) *Runner {
	return &Runner{
		Exec:   exec,
		Logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "build"}),
		Dir:    dir,
	}
}

// Run executes every enabled phase in order. The first command exiting
// non-zero aborts the run; remaining phases do not execute. Every executed
// command is logged before invocation so a failing step can be reproduced
// manually.
func (r *Runner) Run(ctx context.Context, cfg buildcfg.Config) error {
	for _, p := range Sequence(cfg) {
		if !p.Enabled {
			r.Logger.Info("skip", "phase", p.Name)
			continue
		}
		r.Logger.Info("run", "phase", p.Name, "cmd", p.Command)

		res := r.Exec.Run(ctx, shellrun.Step{Name: p.Name, Command: p.Command, Dir: r.Dir})
		if res.Failed() {
			return &StepError{Phase: p.Name, Code: res.ExitCode, Cause: res.Error}
		}
	}
	return nil
}
