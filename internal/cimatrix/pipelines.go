// SPDX-License-Identifier: MPL-2.0

package cimatrix

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flip1995/comprakt/internal/buildcfg"

	"github.com/pelletier/go-toml/v2"
)

// PipelinesFile is the path of the pipeline definition file, relative to the
// canonical base directory.
const PipelinesFile = "ci/pipelines.toml"

// Pipelines externalizes the pieces of the CI matrix that are data rather
// than control flow: the phase bundle applied by the --ci shortcut and the
// corpus category each differential kind narrows to. Keeping these in a file
// lets pipeline definitions grow phases without touching the dispatcher.
type Pipelines struct {
	CIBundle   buildcfg.Bundle `toml:"ci_bundle"`
	Categories map[Kind]string `toml:"categories"`
}

// DefaultPipelines mirrors the canonical CI definitions.
func DefaultPipelines() Pipelines {
	return Pipelines{
		CIBundle: buildcfg.CanonicalCIBundle(),
		Categories: map[Kind]string{
			KindLexer:  "lexer",
			KindSyntax: "syntax",
		},
	}
}

// LoadPipelines reads <baseDir>/ci/pipelines.toml. A missing file yields the
// defaults; a malformed file is a configuration error.
func LoadPipelines(baseDir string) (Pipelines, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, PipelinesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultPipelines(), nil
	}
	if err != nil {
		return Pipelines{}, fmt.Errorf("failed to read pipelines file: %w", err)
	}

	p := DefaultPipelines()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Pipelines{}, fmt.Errorf("failed to parse pipelines file: %w", err)
	}
	return p, nil
}
