// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for the driver's user-facing
// diagnostics. Configuration mistakes (a bad driver token, an unknown test
// kind) are reported with the failing operation, the offending value, and
// suggestions for fixing the invocation.
package issue
