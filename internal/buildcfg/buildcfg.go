// SPDX-License-Identifier: MPL-2.0

// Package buildcfg turns the build driver's argument list into an immutable
// execution configuration.
//
// Parsing is a pure function of the full argument list: no phase may run
// before the whole list has validated, so an unrecognized token anywhere
// yields zero side effects.
package buildcfg

import "fmt"

// Profile is the build configuration variant.
type Profile string

const (
	// ProfileRelease builds with optimizations into target/release.
	ProfileRelease Profile = "release"
	// ProfileDebug builds without optimizations into target/debug.
	ProfileDebug Profile = "debug"
)

// Recognized driver tokens.
const (
	TokenRelease = "--release"
	TokenDebug   = "--debug"
	TokenNoClean = "--no-clean"
	TokenCI      = "--ci"
)

type (
	// Config is the execution configuration for one driver invocation.
	// It is built once by Parse and never mutated afterwards.
	Config struct {
		Profile  Profile
		Clean    bool
		FmtCheck bool
		Lint     bool
		Build    bool
		Test     bool
		Check    bool
	}

	// Bundle is the set of phase toggles applied atomically by the CI
	// shortcut token. Keeping it as data (and loadable from the pipelines
	// file) avoids drift between the shortcut and the phase list when
	// pipelines gain phases.
	Bundle struct {
		Clean    bool `toml:"clean"`
		FmtCheck bool `toml:"fmt_check"`
		Lint     bool `toml:"lint"`
		Build    bool `toml:"build"`
		Test     bool `toml:"test"`
		Check    bool `toml:"check"`
	}

	// UnknownTokenError reports an argument outside the recognized set.
	UnknownTokenError struct {
		Token string
	}
)

// Error implements the error interface.
func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unrecognized argument %q (expected %s, %s, %s, or %s)",
		e.Token, TokenRelease, TokenDebug, TokenNoClean, TokenCI)
}

// Apply overwrites the phase toggles the bundle covers, leaving the profile
// untouched.
func (b Bundle) Apply(cfg Config) Config {
	cfg.Clean = b.Clean
	cfg.FmtCheck = b.FmtCheck
	cfg.Lint = b.Lint
	cfg.Build = b.Build
	cfg.Test = b.Test
	cfg.Check = b.Check
	return cfg
}

// Default returns the configuration used when no tokens are given:
// release profile, clean and build enabled, quality gates disabled.
func Default() Config {
	return Config{
		Profile: ProfileRelease,
		Clean:   true,
		Build:   true,
	}
}

// CanonicalCIBundle is the phase set the CI shortcut applies when the
// pipelines file does not override it.
func CanonicalCIBundle() Bundle {
	return Bundle{FmtCheck: true, Lint: true, Test: true}
}

// Parse builds a Config from the driver's argument list using the canonical
// CI bundle.
func Parse(args []string) (Config, error) {
	return ParseWithBundle(args, CanonicalCIBundle())
}

// ParseWithBundle builds a Config from the argument list. The profile
// selector is last-wins; the CI token atomically overwrites the phase
// toggles it covers, regardless of earlier flags. An unknown token fails the
// whole parse.
func ParseWithBundle(args []string, bundle Bundle) (Config, error) {
	cfg := Default()
	for _, arg := range args {
		switch arg {
		case TokenRelease:
			cfg.Profile = ProfileRelease
		case TokenDebug:
			cfg.Profile = ProfileDebug
		case TokenNoClean:
			cfg.Clean = false
		case TokenCI:
			cfg = bundle.Apply(cfg)
		default:
			return Config{}, &UnknownTokenError{Token: arg}
		}
	}
	return cfg, nil
}
