// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd is the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "comprakt",
		Short: "Build and CI orchestration driver for the comprakt compiler",
		Long: TitleStyle.Render("comprakt") + SubtitleStyle.Render(" - build and CI orchestration driver") + `

The driver runs the compiler's build phases (clean, fmt-check, lint, build,
test, check) conditionally and sequentially with fail-fast semantics, resolves
and launches the built artifact independent of the invocation path, and
dispatches CI test kinds to their validation pipelines.

` + SubtitleStyle.Render("Examples:") + `
  comprakt build                 Clean and build at release optimization
  comprakt build --debug         Clean and build at debug optimization
  comprakt build --ci            Emulate the canonical CI phase set
  comprakt run --lextest in.mj   Run the built compiler on an input
  comprakt ci                    Dispatch the pipeline named by COMPRAKT_TEST_KIND`,
	}
)

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ciCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. It is called by main.main() and propagates
// exact exit codes carried by ExitError.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
