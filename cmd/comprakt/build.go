// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/flip1995/comprakt/internal/basedir"
	"github.com/flip1995/comprakt/internal/buildcfg"
	"github.com/flip1995/comprakt/internal/cimatrix"
	"github.com/flip1995/comprakt/internal/issue"
	"github.com/flip1995/comprakt/internal/phase"
	"github.com/flip1995/comprakt/internal/shellrun"

	"github.com/spf13/cobra"
)

// buildCmd is the primary driver entry point. Flag parsing is disabled so the
// raw token list reaches the pure buildcfg parser unchanged.
var buildCmd = &cobra.Command{
	Use:   "build [--release|--debug] [--no-clean] [--ci]",
	Short: "Run the build phase sequence",
	Long: `Runs the fixed phase sequence clean → fmt-check → lint → build → test → check.

Tokens toggle phases: --release/--debug select the profile (last one wins),
--no-clean disables the clean phase, and --ci atomically applies the canonical
CI phase set. Any other token is a fatal configuration error and no phase
executes. The first failing phase aborts the run.`,
	DisableFlagParsing: true,
	RunE:               runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return cmd.Help()
		}
	}

	base, err := basedir.FromExecutable()
	if err != nil {
		return err
	}

	pipelines, err := cimatrix.LoadPipelines(base)
	if err != nil {
		return err
	}

	cfg, err := buildcfg.ParseWithBundle(args, pipelines.CIBundle)
	if err != nil {
		var ute *buildcfg.UnknownTokenError
		if errors.As(err, &ute) {
			ae := issue.New("parse build arguments").
				WithResource(ute.Token).
				WithSuggestion("Run 'comprakt build --help' for the recognized tokens").
				Wrap(err)
			return &ExitError{Code: 1, Err: errors.New(ae.Format())}
		}
		return err
	}

	runner := phase.NewRunner(shellrun.NewVirtualRunner(), base)
	if err := runner.Run(cmd.Context(), cfg); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("build failed"))
		return failureExit(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("build succeeded"))
	return nil
}

// failureExit maps a phase or pipeline failure to the invocation's exit code:
// the failing command's status when it is non-zero, 1 otherwise.
func failureExit(err error) error {
	var se *phase.StepError
	if errors.As(err, &se) && !se.Code.IsSuccess() {
		return &ExitError{Code: int(se.Code), Err: err}
	}
	return &ExitError{Code: 1, Err: err}
}
