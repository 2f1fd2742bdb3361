// SPDX-License-Identifier: MPL-2.0

// Package shellrun executes toolchain commands for the build driver.
//
// Every external command the driver issues (cargo, git, the mjtest driver)
// goes through the Runner interface so that orchestration logic can be
// exercised against a spy implementation. The production implementation is
// VirtualRunner, which runs command lines through an embedded POSIX shell
// interpreter (mvdan/sh) instead of the host shell.
//
// Execution is strictly synchronous: Run blocks until the command terminates
// and reports its aggregate exit status in a Result.
package shellrun
