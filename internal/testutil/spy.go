// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"strings"

	"github.com/flip1995/comprakt/internal/shellrun"

	"golang.org/x/exp/slices"
)

// SpyRunner records every step it is asked to run instead of executing it.
// Steps succeed unless their name matches FailOn, in which case the spy
// reports FailCode (default 1). It is not safe for concurrent use; the
// driver under test is strictly sequential.
type SpyRunner struct {
	// Steps are the recorded steps, in invocation order.
	Steps []shellrun.Step
	// FailOn names the step that should report a failure. Empty means all
	// steps succeed.
	FailOn string
	// FailCode is the exit code reported for the failing step (default 1).
	FailCode shellrun.ExitCode
}

// Run records the step and reports the scripted outcome.
func (s *SpyRunner) Run(_ context.Context, step shellrun.Step) *shellrun.Result {
	s.Steps = append(s.Steps, step)
	if s.FailOn != "" && step.Name == s.FailOn {
		code := s.FailCode
		if code == 0 {
			code = 1
		}
		return &shellrun.Result{ExitCode: code}
	}
	return &shellrun.Result{}
}

// Names returns the recorded step names in invocation order.
func (s *SpyRunner) Names() []string {
	names := make([]string, 0, len(s.Steps))
	for _, step := range s.Steps {
		names = append(names, step.Name)
	}
	return names
}

// Commands returns the recorded command lines in invocation order.
func (s *SpyRunner) Commands() []string {
	cmds := make([]string, 0, len(s.Steps))
	for _, step := range s.Steps {
		cmds = append(cmds, step.Command)
	}
	return cmds
}

// Ran reports whether a step with the given name was recorded.
func (s *SpyRunner) Ran(name string) bool {
	return slices.Contains(s.Names(), name)
}

// CommandContaining reports whether any recorded command line contains substr.
func (s *SpyRunner) CommandContaining(substr string) bool {
	for _, step := range s.Steps {
		if strings.Contains(step.Command, substr) {
			return true
		}
	}
	return false
}
