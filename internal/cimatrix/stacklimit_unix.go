// SPDX-License-Identifier: MPL-2.0

//go:build unix

package cimatrix

import "golang.org/x/sys/unix"

// widenStackLimit raises the soft call-stack size limit to the hard maximum,
// the portable equivalent of `ulimit -s unlimited`. Release-mode test
// binaries recurse deeply enough on pathological inputs to overflow the
// default soft limit.
func widenStackLimit() error {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &lim); err != nil {
		return err
	}
	if lim.Cur == lim.Max {
		return nil
	}
	lim.Cur = lim.Max
	return unix.Setrlimit(unix.RLIMIT_STACK, &lim)
}
