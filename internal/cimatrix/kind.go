// SPDX-License-Identifier: MPL-2.0

package cimatrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Kind selects which CI validation pipeline runs.
type Kind string

// The closed set of test kinds.
const (
	// KindTestDebug runs the internal validation chain at debug optimization.
	KindTestDebug Kind = "test-debug"
	// KindTestRelease runs the internal validation chain at release
	// optimization with a widened call-stack limit.
	KindTestRelease Kind = "test-release"
	// KindLexer runs the differential corpus narrowed to lexer cases.
	KindLexer Kind = "lexer"
	// KindSyntax runs the differential corpus narrowed to syntax cases.
	KindSyntax Kind = "syntax"
	// KindCompile runs the submission-style packaging and integration suite.
	KindCompile Kind = "compile"
)

// Kinds returns the valid kinds in display order.
func Kinds() []Kind {
	return []Kind{KindTestDebug, KindTestRelease, KindLexer, KindSyntax, KindCompile}
}

// UnknownKindError reports a test kind outside the closed enumeration.
type UnknownKindError struct {
	Value string
}

// Error implements the error interface.
func (e *UnknownKindError) Error() string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return fmt.Sprintf("unknown test kind %q (expected one of: %s)", e.Value, strings.Join(names, ", "))
}

// ParseKind validates a test-kind identifier.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds(), k) {
		return "", &UnknownKindError{Value: s}
	}
	return k, nil
}
