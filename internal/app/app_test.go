package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muliwe/hero-strength/internal/classifier"
	"github.com/muliwe/hero-strength/internal/config"
	"github.com/muliwe/hero-strength/internal/hero"
)

func newTestApp(t *testing.T, logResults bool) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Color = false
	cfg.LogResults = logResults
	cfg.Logger.LogDir = t.TempDir()

	var out bytes.Buffer
	a, err := New(cfg, &out, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, &out
}

func writeRoster(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heroes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestClassifyArgs(t *testing.T) {
	a, out := newTestApp(t, false)

	require.NoError(t, a.ClassifyArgs([]string{"5", "10", "21", " 12.5 "}))
	assert.Equal(t, "5 (weak)\n10 (strong)\n21 (unbelievable)\n12.5 (strong)\n", out.String())
}

func TestClassifyArgs_InvalidStopsEarly(t *testing.T) {
	tests := []string{"abc", "NaN", "Inf", "1e400"}
	for _, bad := range tests {
		t.Run(bad, func(t *testing.T) {
			a, out := newTestApp(t, false)

			err := a.ClassifyArgs([]string{"5", bad, "21"})
			assert.ErrorIs(t, err, classifier.ErrInvalidInput)
			assert.Equal(t, "5 (weak)\n", out.String())
		})
	}
}

func TestClassifyArgs_LogsResults(t *testing.T) {
	a, _ := newTestApp(t, true)

	require.NoError(t, a.ClassifyArgs([]string{"8", "30"}))
	path := a.ResultLogPath()
	require.NoError(t, a.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"display":"8 (weak)"`)
	assert.Contains(t, lines[1], `"label":"unbelievable"`)
}

func TestResultLogPath_Disabled(t *testing.T) {
	a, _ := newTestApp(t, false)
	assert.Empty(t, a.ResultLogPath())
	assert.NoError(t, a.Close())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logger.FileName = ""

	_, err := New(cfg, &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

const roster = `heroes:
  - {id: 1, name: SpiderDude, strength: 8}
  - {id: 2, name: Wonderful Woman, strength: 24}
  - {id: 3, name: SuperDude, strength: 55}
`

func TestShowRoster(t *testing.T) {
	a, out := newTestApp(t, false)

	require.NoError(t, a.ShowRoster(writeRoster(t, roster)))
	assert.Equal(t,
		"1 SpiderDude: 8 (weak)\n2 Wonderful Woman: 24 (unbelievable)\n3 SuperDude: 55 (unbelievable)\n",
		out.String())
}

func TestShowRoster_MissingFile(t *testing.T) {
	a, _ := newTestApp(t, false)
	assert.Error(t, a.ShowRoster(filepath.Join(t.TempDir(), "none.yaml")))
}

func TestShowHero(t *testing.T) {
	a, out := newTestApp(t, false)
	path := writeRoster(t, roster)

	require.NoError(t, a.ShowHero(path, 2))
	assert.Equal(t, "2 Wonderful Woman: 24 (unbelievable)\n", out.String())

	assert.ErrorIs(t, a.ShowHero(path, 9), hero.ErrNotFound)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("10")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = ParseValue("")
	assert.ErrorIs(t, err, classifier.ErrInvalidInput)
}
