// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"testing"

	"github.com/flip1995/comprakt/internal/phase"
)

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{name: "bare code", err: &ExitError{Code: 42}, want: "exit status 42"},
		{name: "wrapped cause", err: &ExitError{Code: 1, Err: errors.New("boom")}, want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailureExit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "phase failure carries its exit status",
			err:      &phase.StepError{Phase: "test", Code: 101},
			wantCode: 101,
		},
		{
			name:     "infrastructure failure maps to 1",
			err:      errors.New("interpreter setup failed"),
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var exitErr *ExitError
			if !errors.As(failureExit(tt.err), &exitErr) {
				t.Fatal("failureExit() did not return an *ExitError")
			}
			if exitErr.Code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", exitErr.Code, tt.wantCode)
			}
		})
	}
}

func TestGetVersionString(t *testing.T) {
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}
}
