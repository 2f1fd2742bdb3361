// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"

	"github.com/flip1995/comprakt/internal/basedir"
	"github.com/flip1995/comprakt/internal/cimatrix"
	"github.com/flip1995/comprakt/internal/config"
	"github.com/flip1995/comprakt/internal/issue"
	"github.com/flip1995/comprakt/internal/shellrun"

	"github.com/spf13/cobra"
)

// ciCmd dispatches the CI pipeline selected by the environment.
var ciCmd = &cobra.Command{
	Use:   "ci",
	Short: "Dispatch a CI validation pipeline",
	Long: `Reads the test kind from ` + config.EnvTestKind + ` and runs its pipeline:
internal tests (test-debug, test-release), the differential reference corpus
(lexer, syntax), or the submission-style integration run (compile). An unknown
kind fails before any step executes.`,
	RunE: runCI,
}

func runCI(cmd *cobra.Command, _ []string) error {
	base, err := basedir.FromExecutable()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return err
	}
	if cfg.TestKind == "" {
		ae := issue.New("select CI pipeline").
			WithSuggestion("Set " + config.EnvTestKind + " to one of the known test kinds")
		return &ExitError{Code: 1, Err: errors.New(ae.Format())}
	}

	pipelines, err := cimatrix.LoadPipelines(base)
	if err != nil {
		return err
	}

	d := cimatrix.NewDispatcher(shellrun.NewVirtualRunner(), base, cfg, pipelines)
	if err := d.Dispatch(cmd.Context(), cfg.TestKind); err != nil {
		var uke *cimatrix.UnknownKindError
		if errors.As(err, &uke) {
			ae := issue.New("select CI pipeline").
				WithResource(uke.Value).
				WithSuggestion("Set " + config.EnvTestKind + " to one of the known test kinds").
				Wrap(err)
			return &ExitError{Code: 1, Err: errors.New(ae.Format())}
		}
		return failureExit(err)
	}
	return nil
}
