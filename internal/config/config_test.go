// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Profile != "release" {
		t.Errorf("default profile = %q, want %q", cfg.Profile, "release")
	}
	if cfg.MJTestTimeout != 60*time.Second {
		t.Errorf("default timeout = %v, want 60s", cfg.MJTestTimeout)
	}
	if cfg.TestKind != "" {
		t.Errorf("default test kind = %q, want empty", cfg.TestKind)
	}
	if cfg.CorpusDir != "mjtest" {
		t.Errorf("default corpus dir = %q, want %q", cfg.CorpusDir, "mjtest")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "profile = \"debug\"\nmjtest_timeout = \"90s\"\ncorpus_dir = \"corpus\"\n"
	if err := os.WriteFile(filepath.Join(dir, "comprakt.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Profile != "debug" {
		t.Errorf("profile = %q, want %q", cfg.Profile, "debug")
	}
	if cfg.MJTestTimeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", cfg.MJTestTimeout)
	}
	if cfg.CorpusDir != "corpus" {
		t.Errorf("corpus dir = %q, want %q", cfg.CorpusDir, "corpus")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "comprakt.toml"), []byte("profile = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvProfile, "release")
	t.Setenv(EnvTestKind, "lexer")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Profile != "release" {
		t.Errorf("profile = %q, want env override %q", cfg.Profile, "release")
	}
	if cfg.TestKind != "lexer" {
		t.Errorf("test kind = %q, want %q", cfg.TestKind, "lexer")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "comprakt.toml"), []byte("profile = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() accepted a malformed config file")
	}
}
