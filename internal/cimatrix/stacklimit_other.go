// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package cimatrix

// widenStackLimit is a no-op on platforms without POSIX resource limits.
func widenStackLimit() error {
	return nil
}
