// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strings"
)

// ActionableError is an error carrying context for user-facing messages:
// what operation failed, which value was involved, and how to fix it.
type ActionableError struct {
	// Operation describes what was attempted (e.g., "parse build arguments").
	Operation string
	// Resource identifies the token, variable, or path involved (optional).
	Resource string
	// Suggestions are hints for fixing the invocation (optional).
	Suggestions []string
	// Cause is the underlying error (optional).
	Cause error
}

// New creates an ActionableError for the given operation.
func New(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// WithResource sets the resource involved and returns the error.
func (e *ActionableError) WithResource(res string) *ActionableError {
	e.Resource = res
	return e
}

// WithSuggestion appends a remediation hint and returns the error.
func (e *ActionableError) WithSuggestion(s string) *ActionableError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

// Wrap sets the underlying cause and returns the error.
func (e *ActionableError) Wrap(err error) *ActionableError {
	e.Cause = err
	return e
}

// Error implements the error interface with a single-line message.
func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the message plus bulleted suggestions for terminal output.
func (e *ActionableError) Format() string {
	var msg strings.Builder
	msg.WriteString(e.Error())
	for _, s := range e.Suggestions {
		fmt.Fprintf(&msg, "\n  • %s", s)
	}
	return msg.String()
}
