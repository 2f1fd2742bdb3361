// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/flip1995/comprakt/internal/basedir"
	"github.com/flip1995/comprakt/internal/config"
	"github.com/flip1995/comprakt/internal/launch"

	"github.com/spf13/cobra"
)

// runCmd launches the built compiler, forwarding all arguments verbatim and
// yielding exactly the child's exit status. Flag parsing is disabled so
// compiler flags like --lextest pass through untouched.
var runCmd = &cobra.Command{
	Use:   "run [compiler arguments...]",
	Short: "Launch the built compiler binary",
	Long: `Resolves target/<profile>/` + launch.ArtifactName + ` relative to the canonical base
directory and runs it. The profile comes from ` + config.EnvProfile + ` (default
"release"), decoupled from any build-time flag. The wrapper adds no output of
its own; its exit status is the compiler's.`,
	DisableFlagParsing: true,
	RunE:               runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) error {
	base, err := basedir.FromExecutable()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return err
	}

	code, err := launch.New().Run(cmd.Context(), base, cfg.Profile, args)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
