// SPDX-License-Identifier: MPL-2.0

// Package cimatrix dispatches a named CI test kind to one of several
// heterogeneous validation pipelines: the internal test suite (debug or
// release), the external differential reference corpus, and a
// submission-style integration run.
//
// All pipelines are strictly sequential and fail-fast. Setup steps (corpus
// fetch, submodule sync) run exactly once per invocation, before any
// validation step; a setup failure prevents all validation from running.
package cimatrix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flip1995/comprakt/internal/buildcfg"
	"github.com/flip1995/comprakt/internal/config"
	"github.com/flip1995/comprakt/internal/launch"
	"github.com/flip1995/comprakt/internal/phase"
	"github.com/flip1995/comprakt/internal/shellrun"

	"github.com/charmbracelet/log"
)

// EnvMJRun is the environment handle through which test suites receive the
// resolved compiler location, so they never hard-code a path.
const EnvMJRun = "MJ_RUN"

// Dispatcher selects and executes one CI pipeline per invocation.
type Dispatcher struct {
	Exec      shellrun.Runner
	Phases    *phase.Runner
	Logger    *log.Logger
	Base      string
	Cfg       config.Config
	Pipelines Pipelines

	// widenStack raises the call-stack size limit for release-mode internal
	// tests. Overridable in tests; nil means the platform implementation.
	widenStack func() error
	// corpusReady guards the one-time corpus setup within this invocation.
	corpusReady bool
}

// NewDispatcher wires a dispatcher for one invocation rooted at base.
func NewDispatcher(exec shellrun.Runner, base string, cfg config.Config, pipelines Pipelines) *Dispatcher {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ci"})
	return &Dispatcher{
		Exec:      exec,
		Phases:    &phase.Runner{Exec: exec, Logger: logger, Dir: base},
		Logger:    logger,
		Base:      base,
		Cfg:       cfg,
		Pipelines: pipelines,
	}
}

// Dispatch validates the kind and runs its pipeline. Unknown kinds fail
// before any step executes.
func (d *Dispatcher) Dispatch(ctx context.Context, kind string) error {
	k, err := ParseKind(kind)
	if err != nil {
		return err
	}

	d.Logger.Info("dispatch", "kind", k)
	switch k {
	case KindTestDebug:
		return d.runInternal(ctx, buildcfg.ProfileDebug)
	case KindTestRelease:
		return d.runInternal(ctx, buildcfg.ProfileRelease)
	case KindLexer, KindSyntax:
		return d.runDifferential(ctx, k)
	case KindCompile:
		return d.runSubmission(ctx)
	}
	return &UnknownKindError{Value: kind}
}

// runInternal runs format-check, lint-as-error, and the internal test suite
// at the selected optimization level, each step gated on the prior one. The
// release variant first widens the stack limit: the compiler's recursive
// descent overflows a default-size stack on deeply nested inputs when test
// binaries run without the debug stack checks.
func (d *Dispatcher) runInternal(ctx context.Context, profile buildcfg.Profile) error {
	if profile == buildcfg.ProfileRelease {
		if err := d.raiseStackLimit(); err != nil {
			return fmt.Errorf("failed to widen stack limit: %w", err)
		}
	}
	cfg := d.Pipelines.CIBundle.Apply(buildcfg.Config{Profile: profile})
	return d.Phases.Run(ctx, cfg)
}

// runDifferential builds the release artifact, performs the one-time corpus
// setup, and hands the fresh binary to the corpus driver narrowed to the
// kind's category, with a bounded per-case timeout.
func (d *Dispatcher) runDifferential(ctx context.Context, k Kind) error {
	buildOnly := buildcfg.Config{Profile: buildcfg.ProfileRelease, Build: true}
	if err := d.Phases.Run(ctx, buildOnly); err != nil {
		return err
	}

	if err := d.setupCorpus(ctx); err != nil {
		return err
	}

	category, ok := d.Pipelines.Categories[k]
	if !ok {
		return fmt.Errorf("no corpus category configured for kind %q", k)
	}

	bin := launch.ResolvePath(d.Base, string(buildcfg.ProfileRelease))
	cmd := fmt.Sprintf("python3 %s/mjt.py %s --ci_testing --timeout %d",
		d.Cfg.CorpusDir, category, int(d.Cfg.MJTestTimeout.Seconds()))
	return d.step(ctx, shellrun.Step{
		Name:    "mjtest",
		Command: cmd,
		Dir:     d.Base,
		Env:     map[string]string{EnvMJRun: bin},
	})
}

// runSubmission runs the packaging entry end-to-end (the driver's default
// build path) and then the integration suite, which receives the resolved
// binary location through the MJ_RUN environment handle.
func (d *Dispatcher) runSubmission(ctx context.Context) error {
	if err := d.Phases.Run(ctx, buildcfg.Default()); err != nil {
		return err
	}

	bin := launch.ResolvePath(d.Base, string(buildcfg.ProfileRelease))
	return d.step(ctx, shellrun.Step{
		Name:    "integration",
		Command: "cargo test --release --test integration",
		Dir:     d.Base,
		Env:     map[string]string{EnvMJRun: bin},
	})
}

// setupCorpus fetches the differential reference corpus and synchronizes its
// nested sub-components. It runs at most once per invocation.
func (d *Dispatcher) setupCorpus(ctx context.Context) error {
	if d.corpusReady {
		return nil
	}

	if _, err := os.Stat(d.corpusPath()); os.IsNotExist(err) {
		clone := fmt.Sprintf("git clone %s %s", d.Cfg.CorpusRepo, d.Cfg.CorpusDir)
		if err := d.step(ctx, shellrun.Step{Name: "corpus-fetch", Command: clone, Dir: d.Base}); err != nil {
			return err
		}
	}

	sync := fmt.Sprintf("git -C %s submodule update --init --recursive", d.Cfg.CorpusDir)
	if err := d.step(ctx, shellrun.Step{Name: "corpus-sync", Command: sync, Dir: d.Base}); err != nil {
		return err
	}

	d.corpusReady = true
	return nil
}

func (d *Dispatcher) corpusPath() string {
	return filepath.Join(d.Base, d.Cfg.CorpusDir)
}

// step logs and executes one pipeline step, converting a non-zero exit into
// an error that halts the pipeline.
func (d *Dispatcher) step(ctx context.Context, s shellrun.Step) error {
	d.Logger.Info("run", "step", s.Name, "cmd", s.Command)
	res := d.Exec.Run(ctx, s)
	if res.Failed() {
		if res.Error != nil {
			return fmt.Errorf("step %s failed: %w", s.Name, res.Error)
		}
		return fmt.Errorf("step %s failed with exit status %d", s.Name, res.ExitCode)
	}
	return nil
}

// raiseStackLimit applies the platform stack widening, honoring a test seam.
func (d *Dispatcher) raiseStackLimit() error {
	if d.widenStack != nil {
		return d.widenStack()
	}
	return widenStackLimit()
}
