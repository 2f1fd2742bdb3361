// SPDX-License-Identifier: MPL-2.0

// Package testutil provides shared test doubles for the orchestration
// packages, most importantly a spy implementation of shellrun.Runner used to
// assert which commands a run would have executed.
package testutil
