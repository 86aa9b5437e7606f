// Package cli: run_test.go exercises the commands end to end through
// cobra, capturing stdout in a buffer.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/color-pour/internal/model"
	"github.com/shinji-kodama/color-pour/internal/scenario"
)

// execute runs a fresh root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

// executeWithStderr runs a fresh root command with args and returns its
// stdout and stderr separately.
func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// TestRoot_DefaultSession verifies the console output of a run with no
// arguments.
func TestRoot_DefaultSession(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	want := "Container [Red] (1/3)\n" +
		"Container [Green] (1/3)\n" +
		"Container [Blue] (1/3)\n" +
		"---\n" +
		"Container [] (0/3)\n" +
		"Container [Green] (1/3)\n" +
		"Container [Blue Red] (2/3)\n"
	assert.Equal(t, want, out)
}

// TestRoot_PourOverrides verifies that --pour replaces the default pours
// and that rejected pours print their messages after the separator.
func TestRoot_PourOverrides(t *testing.T) {
	out, err := execute(t, "--pour", "1->1", "--pour", "0->1", "--pour", "0->2")
	require.NoError(t, err)

	want := "Container [Red] (1/3)\n" +
		"Container [Green] (1/3)\n" +
		"Container [Blue] (1/3)\n" +
		"---\n" +
		"Cannot pour from the same container!\n" +
		"Source container is empty!\n" +
		"Container [] (0/3)\n" +
		"Container [Green Red] (2/3)\n" +
		"Container [Blue] (1/3)\n"
	assert.Equal(t, want, out)
}

// TestRoot_InvalidPourFlag verifies that a malformed --pour value maps to
// ExitInvalidScenario.
func TestRoot_InvalidPourFlag(t *testing.T) {
	_, err := execute(t, "--pour", "zero->one")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInvalidScenario, cliErr.Code)
}

// TestRoot_RejectsArguments verifies that positional arguments are refused.
func TestRoot_RejectsArguments(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

// TestRoot_JSON verifies that --json emits the report as JSON.
func TestRoot_JSON(t *testing.T) {
	out, err := execute(t, "--json")
	require.NoError(t, err)

	var report scenario.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "default", report.Name)
	require.Len(t, report.After, 3)
	assert.Equal(t, []string{"Blue", "Red"}, report.After[2].Colors)
	assert.Empty(t, report.Diagnostics)
}

// TestRoot_Verbose verifies that --verbose traces the run on stderr only
// and that a run without it writes nothing to stderr.
func TestRoot_Verbose(t *testing.T) {
	_, quietErrOut, err := executeWithStderr(t)
	require.NoError(t, err)
	assert.Empty(t, quietErrOut)

	out, errOut, err := executeWithStderr(t, "--verbose", "--pour", "0->0")
	require.NoError(t, err)

	assert.Contains(t, errOut, `[verbose] Running scenario "default" with 3 containers and 1 pours`)
	assert.Contains(t, errOut, "[verbose] Run finished with 1 conditions")
	assert.NotContains(t, out, "[verbose]")
	assert.Contains(t, out, "Cannot pour from the same container!")

	_, errOut, err = executeWithStderr(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[verbose] Run finished with 0 conditions")
}

// TestRoot_ScenarioFile verifies that --scenario runs a YAML file and that
// seeding conditions print before the first display line.
func TestRoot_ScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`containers:
  - [A, B, C, D]
  - []
pours:
  - {from: 0, to: 1}
`), 0o644))

	out, err := execute(t, "--scenario", path)
	require.NoError(t, err)

	want := "Container is full!\n" +
		"Container [A B C] (3/3)\n" +
		"Container [] (0/3)\n" +
		"---\n" +
		"Container [A B] (2/3)\n" +
		"Container [C] (1/3)\n"
	assert.Equal(t, want, out)
}

// TestRoot_MissingScenarioFile verifies the not-found exit code.
func TestRoot_MissingScenarioFile(t *testing.T) {
	_, err := execute(t, "--scenario", filepath.Join(t.TempDir(), "missing.json"))

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitScenarioNotFound, cliErr.Code)
}

// TestValidate_Command covers the valid and invalid outcomes of the
// validate subcommand.
func TestValidate_Command(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.jsonc")
	require.NoError(t, os.WriteFile(valid, []byte(`{
  // ok
  "containers": [["Red"], []],
  "pours": [{"from": 0, "to": 1}]
}`), 0o644))

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{
  "containers": [["Red"]],
  "pours": [{"from": 0, "to": 4}]
}`), 0o644))

	t.Run("valid", func(t *testing.T) {
		out, err := execute(t, "validate", valid)
		require.NoError(t, err)
		assert.Equal(t, "OK\n", out)
	})

	t.Run("invalid", func(t *testing.T) {
		out, err := execute(t, "validate", invalid)
		assert.Contains(t, out, "pours[0].to")

		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitInvalidScenario, cliErr.Code)
	})

	t.Run("invalid json output", func(t *testing.T) {
		out, err := execute(t, "validate", "--json", invalid)
		require.Error(t, err)

		var result validateResultJSON
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.False(t, result.Valid)
		assert.Len(t, result.Errors, 1)
	})
}
