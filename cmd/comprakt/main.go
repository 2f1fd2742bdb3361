// SPDX-License-Identifier: MPL-2.0

// comprakt is the build and CI orchestration driver for the comprakt
// compiler project.
package main

func main() {
	Execute()
}
