package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/model"
	caseflowerrors "github.com/caseflow/caseflow/pkg/errors"
)

const sampleSuite = `
name: login flows
description: smoke tests for the login screen
settings:
  mode: parallel
  timeout: 30
  continue_on_failure: true
cases:
  - id: login-ok
    name: successful login
    parameters:
      user: alice
    steps:
      - name: open login page
        order: 1
        kind: navigation
        parameters:
          url: https://example.test/login
      - name: submit credentials
        order: 2
        kind: action
        action: submit login form
      - name: check banner
        order: 3
        kind: verification
        expected: Login successful
`

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSuite_Valid(t *testing.T) {
	suite, err := LoadSuite(writeSuite(t, sampleSuite))
	require.NoError(t, err)

	require.Equal(t, "login flows", suite.Name)
	require.Equal(t, ModeParallel, suite.Settings.Mode)
	require.Equal(t, 30*time.Second, suite.Settings.DefaultTimeout())
	require.True(t, suite.Settings.ContinueOnFailure)
	require.Len(t, suite.Cases, 1)
	require.Len(t, suite.Cases[0].Steps, 3)
}

func TestLoadSuite_AppliesParallelDefault(t *testing.T) {
	suite, err := LoadSuite(writeSuite(t, sampleSuite))
	require.NoError(t, err)
	require.Equal(t, 4, suite.Settings.MaxParallelTests)
}

func TestLoadSuite_DefaultsToSequential(t *testing.T) {
	doc := `
name: minimal
cases:
  - id: only
    steps:
      - order: 1
        kind: action
        action: do something
`
	suite, err := LoadSuite(writeSuite(t, doc))
	require.NoError(t, err)
	require.Equal(t, ModeSequential, suite.Settings.Mode)
	require.Zero(t, suite.Settings.MaxParallelTests)
}

func TestLoadSuite_MissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	var parseErr *caseflowerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseSuite_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no cases", "name: empty\ncases: []\n"},
		{"missing name", "cases:\n  - id: a\n    steps:\n      - order: 1\n        kind: action\n"},
		{"bad kind shape", "name: x\ncases:\n  - id: a\n    steps:\n      - order: 1\n        kind: 'Not A Kind'\n"},
		{"bad mode", "name: x\nsettings:\n  mode: warp\ncases:\n  - id: a\n    steps:\n      - order: 1\n        kind: action\n"},
		{"negative parallel", "name: x\nsettings:\n  max_parallel_tests: -1\n  mode: parallel\ncases:\n  - id: a\n    steps:\n      - order: 1\n        kind: action\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSuite([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestParseSuite_DuplicateCaseID(t *testing.T) {
	doc := `
name: dupes
cases:
  - id: same
    steps:
      - order: 1
        kind: action
        action: a
  - id: same
    steps:
      - order: 1
        kind: action
        action: b
`
	_, err := ParseSuite([]byte(doc))
	require.Error(t, err)
	var valErr *caseflowerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestLoadSuite_ShippedExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		suite, err := LoadSuite(path)
		require.NoError(t, err, path)
		require.NotEmpty(t, suite.TestCases(), path)
	}
}

func TestSuite_TestCases(t *testing.T) {
	suite, err := ParseSuite([]byte(sampleSuite))
	require.NoError(t, err)

	cases := suite.TestCases()
	require.Len(t, cases, 1)
	require.Equal(t, "login-ok", cases[0].ID)
	require.Equal(t, "alice", cases[0].Parameters["user"])
	require.Equal(t, model.KindNavigation, cases[0].Steps[0].Kind)
	require.Equal(t, "Login successful", cases[0].Steps[2].ExpectedResult)

	// The converted model must be independent of the document.
	cases[0].Parameters["user"] = "mallory"
	require.Equal(t, "alice", suite.Cases[0].Parameters["user"])
}
