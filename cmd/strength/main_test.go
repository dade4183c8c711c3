package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := execute(cmd, append([]string{"--no-color", "--log-dir", t.TempDir()}, args...))
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "classify", "5", "10", "21")
	require.NoError(t, err)
	assert.Equal(t, "5 (weak)\n10 (strong)\n21 (unbelievable)\n", out)
}

func TestClassifyCommand_Negative(t *testing.T) {
	out, err := run(t, "--no-log", "classify", "-3")
	require.NoError(t, err)
	assert.Equal(t, "-3 (weak)\n", out)

	out, err = run(t, "classify", "--no-log", "-0.5", "12", "-20")
	require.NoError(t, err)
	assert.Equal(t, "-0.5 (weak)\n12 (strong)\n-20 (weak)\n", out)

	out, err = run(t, "classify", "5", "-3")
	require.NoError(t, err)
	assert.Equal(t, "5 (weak)\n-3 (weak)\n", out)

	out, err = run(t, "classify", "--", "-3")
	require.NoError(t, err)
	assert.Equal(t, "-3 (weak)\n", out)
}

func TestClassifyCommand_NegativeInfinity(t *testing.T) {
	_, err := run(t, "--no-log", "classify", "-Inf")
	assert.ErrorContains(t, err, "invalid strength value")
}

func TestEscapeNegativeValues(t *testing.T) {
	root := newRootCmd(&bytes.Buffer{})
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"classify", "-3"}, []string{"classify", "--", "-3"}},
		{[]string{"--log-dir", "-1", "classify", "-3"}, []string{"--log-dir", "-1", "classify", "--", "-3"}},
		{[]string{"classify", "-v", "-3"}, []string{"classify", "-v", "--", "-3"}},
		{[]string{"classify", "4", "-3"}, []string{"classify", "4", "-3"}},
		{[]string{"classify", "--", "-3"}, []string{"classify", "--", "-3"}},
		{[]string{"heroes", "--id", "-3"}, []string{"heroes", "--id", "-3"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeNegativeValues(root, tt.args), "args %v", tt.args)
	}
}

func TestClassifyCommand_NoArgs(t *testing.T) {
	_, err := run(t, "classify")
	assert.Error(t, err)
}

func TestClassifyCommand_Invalid(t *testing.T) {
	out, err := run(t, "--no-log", "classify", "7", "NaN")
	assert.ErrorContains(t, err, "invalid strength value")
	assert.Equal(t, "7 (weak)\n", out)
}

func TestClassifyCommand_WritesLog(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--no-color", "--log-dir", dir, "classify", "15"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "classifications.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"display":"15 (strong)"`)
}

func TestHeroesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heroes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`heroes:
  - {id: 1, name: SpiderDude, strength: 8}
  - {id: 2, name: Wonderful Woman, strength: 24}
`), 0o644))

	out, err := run(t, "heroes", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "1 SpiderDude: 8 (weak)\n2 Wonderful Woman: 24 (unbelievable)\n", out)

	out, err = run(t, "heroes", "--file", path, "--id", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 SpiderDude: 8 (weak)\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "strength.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_results: false\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "classify", "20")
	require.NoError(t, err)
	assert.Equal(t, "20 (strong)\n", out)
}
