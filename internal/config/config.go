// SPDX-License-Identifier: MPL-2.0

// Package config loads the driver's runtime configuration.
//
// Configuration is populated exactly once at startup from an optional
// comprakt.toml in the canonical base directory plus COMPRAKT_* environment
// variables, and is never re-read later. Environment values win over the
// file; the file wins over defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment lookups honored by the driver.
const (
	// EnvPrefix is the prefix for all driver environment variables.
	EnvPrefix = "COMPRAKT"
	// EnvProfile selects the launcher profile (COMPRAKT_PROFILE).
	EnvProfile = "COMPRAKT_PROFILE"
	// EnvTestKind selects the CI pipeline (COMPRAKT_TEST_KIND).
	EnvTestKind = "COMPRAKT_TEST_KIND"
)

// Config is the typed runtime configuration for one invocation.
type Config struct {
	// Profile is the launcher profile label, decoupled from build flags.
	Profile string `mapstructure:"profile"`
	// TestKind selects the CI pipeline to dispatch.
	TestKind string `mapstructure:"test_kind"`
	// MJTestTimeout is the per-case budget handed to the corpus driver.
	MJTestTimeout time.Duration `mapstructure:"mjtest_timeout"`
	// CorpusRepo is the git URL of the differential reference corpus.
	CorpusRepo string `mapstructure:"corpus_repo"`
	// CorpusDir is the corpus checkout directory relative to the base.
	CorpusDir string `mapstructure:"corpus_dir"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Profile:       "release",
		MJTestTimeout: 60 * time.Second,
		CorpusRepo:    "https://github.com/MiniJava-tests/mjtest.git",
		CorpusDir:     "mjtest",
	}
}

// Load reads comprakt.toml from baseDir (if present) and the environment.
func Load(baseDir string) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("test_kind", defaults.TestKind)
	v.SetDefault("mjtest_timeout", defaults.MJTestTimeout)
	v.SetDefault("corpus_repo", defaults.CorpusRepo)
	v.SetDefault("corpus_dir", defaults.CorpusDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("comprakt")
	v.SetConfigType("toml")
	v.AddConfigPath(baseDir)
	if err := v.ReadInConfig(); err != nil {
		// A missing file means defaults; anything else is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read comprakt.toml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
