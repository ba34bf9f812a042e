package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/handler"
)

const passingSuite = `
name: smoke
settings:
  mode: sequential
cases:
  - id: login
    name: Login works
    steps:
      - order: 1
        kind: setup
        parameters:
          lastResult: "Login successful"
      - order: 2
        kind: verification
        expected: "Login successful"
`

const failingSuite = `
name: smoke
cases:
  - id: login
    name: Login works
    steps:
      - order: 1
        kind: verification
        expected: "never set"
`

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testRegistry(t *testing.T) *handler.Registry {
	t.Helper()
	registry := handler.NewRegistry()
	require.NoError(t, registerBuiltins(registry))
	return registry
}

func TestRunSuite_PassingSuite(t *testing.T) {
	opts := runOptions{
		SuitePath:      writeSuite(t, passingSuite),
		NonInteractive: true,
	}
	require.NoError(t, runSuite(opts, testRegistry(t)))
}

func TestRunSuite_FailingSuiteReturnsError(t *testing.T) {
	opts := runOptions{
		SuitePath:      writeSuite(t, failingSuite),
		NonInteractive: true,
	}
	err := runSuite(opts, testRegistry(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed")
}

func TestRunSuite_MissingSuiteFile(t *testing.T) {
	opts := runOptions{SuitePath: filepath.Join(t.TempDir(), "absent.yaml"), NonInteractive: true}
	require.Error(t, runSuite(opts, testRegistry(t)))
}

func TestRunSuite_FlagOverridesMode(t *testing.T) {
	opts := runOptions{
		SuitePath:      writeSuite(t, passingSuite),
		Mode:           "parallel",
		Parallel:       2,
		NonInteractive: true,
	}
	require.NoError(t, runSuite(opts, testRegistry(t)))
}

func TestRunCmd_RequiresSuiteFlag(t *testing.T) {
	cmd := newRootCmd(testRegistry(t))
	cmd.SetArgs([]string{"run"})
	require.Error(t, cmd.Execute())
}

func TestRunCmd_InvokesRunner(t *testing.T) {
	original := runCmdRunner
	t.Cleanup(func() { runCmdRunner = original })

	var captured runOptions
	runCmdRunner = func(opts runOptions, _ *handler.Registry) error {
		captured = opts
		return nil
	}

	cmd := newRootCmd(testRegistry(t))
	cmd.SetArgs([]string{"run", "--suite", "suite.yaml", "--mode", "parallel", "--parallel", "3", "--verbose"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "suite.yaml", captured.SuitePath)
	require.Equal(t, "parallel", captured.Mode)
	require.Equal(t, 3, captured.Parallel)
	require.True(t, captured.Verbose)
}
