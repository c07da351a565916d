package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Orbital", c.LabelColumn)
	assert.Equal(t, "kcal/mol", c.EnergyColumn)
	assert.Equal(t, "top_sorted_result.csv", c.OutputPath)
	assert.Equal(t, 5, c.DefaultN)
	assert.Equal(t, "top", c.Direction)
	assert.Contains(t, c.Vocabulary, "RY*")
	assert.Empty(t, c.DefaultExclude)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	c.DefaultN = 12
	c.DefaultExclude = []string{"CR", "RY*"}
	require.NoError(t, Save(c, ""))

	dir, err := Dir()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	back, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, back.DefaultN)
	assert.Equal(t, []string{"CR", "RY*"}, back.DefaultExclude)
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	p := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(p, []byte("energy_column: E(2)\ndefault_n: 3\n"), 0o644))
	t.Setenv("NBORANK_DEFAULT_N", "9")

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "E(2)", c.EnergyColumn)
	assert.Equal(t, 9, c.DefaultN)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Orbital", c.LabelColumn)
}

func TestLoadBrokenFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	p := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(p, []byte("default_n: [\n"), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}
