package config

import (
	"os"

	"gopkg.in/yaml.v3"

	caseflowerrors "github.com/caseflow/caseflow/pkg/errors"
)

const defaultMaxParallelTests = 4

// LoadSuite reads a suite document from disk, validates it, and applies
// scheduling defaults.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, caseflowerrors.NewParseError(path, err)
	}

	suite, err := ParseSuite(data)
	if err != nil {
		if _, ok := err.(*caseflowerrors.ValidationError); ok {
			return nil, err
		}
		return nil, caseflowerrors.NewParseError(path, err)
	}
	return suite, nil
}

// ParseSuite decodes and validates a suite document from raw YAML.
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	if err := ValidateSuite(&suite); err != nil {
		return nil, err
	}

	applyDefaults(&suite.Settings)
	return &suite, nil
}

func applyDefaults(cfg *RunConfig) {
	if cfg.Mode == "" {
		cfg.Mode = ModeSequential
	}
	if cfg.Mode == ModeParallel && cfg.MaxParallelTests == 0 {
		cfg.MaxParallelTests = defaultMaxParallelTests
	}
}
