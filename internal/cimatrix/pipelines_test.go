// SPDX-License-Identifier: MPL-2.0

package cimatrix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flip1995/comprakt/internal/buildcfg"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		if got, err := ParseKind(string(k)); err != nil || got != k {
			t.Errorf("ParseKind(%q) = (%q, %v), want (%q, nil)", k, got, err, k)
		}
	}

	_, err := ParseKind("benchmark")
	var uke *UnknownKindError
	if !errors.As(err, &uke) {
		t.Fatalf("ParseKind(benchmark) error type = %T, want *UnknownKindError", err)
	}
}

func TestLoadPipelinesMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	p, err := LoadPipelines(t.TempDir())
	if err != nil {
		t.Fatalf("LoadPipelines() error: %v", err)
	}
	if p.CIBundle != buildcfg.CanonicalCIBundle() {
		t.Errorf("default bundle = %+v", p.CIBundle)
	}
	if p.Categories[KindLexer] != "lexer" || p.Categories[KindSyntax] != "syntax" {
		t.Errorf("default categories = %v", p.Categories)
	}
}

func TestLoadPipelinesFromFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "ci"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `[ci_bundle]
fmt_check = true
lint = true
test = true
check = true

[categories]
lexer = "lexer-only"
syntax = "syntax-only"
`
	if err := os.WriteFile(filepath.Join(base, PipelinesFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPipelines(base)
	if err != nil {
		t.Fatalf("LoadPipelines() error: %v", err)
	}
	if !p.CIBundle.Check {
		t.Error("bundle override not applied")
	}
	if p.Categories[KindLexer] != "lexer-only" {
		t.Errorf("lexer category = %q, want %q", p.Categories[KindLexer], "lexer-only")
	}
}

func TestLoadPipelinesMalformedFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "ci"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, PipelinesFile), []byte("[ci_bundle\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPipelines(base); err == nil {
		t.Error("LoadPipelines() accepted a malformed file")
	}
}
