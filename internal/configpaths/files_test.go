package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := DefaultNamedConfigPath("run", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sweepmap", "run.yaml"), p)

	p, err = DefaultConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sweepmap", "config.json"), p)
}

func TestConfigCandidatePaths(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("/tmp/mine.toml")
	require.NotEmpty(t, tomlPaths)
	assert.Equal(t, "/tmp/mine.toml", tomlPaths[0])
	assert.NotContains(t, jsonPaths, "/tmp/mine.toml")
	assert.Len(t, yamlPaths, 2*len(jsonPaths))

	jsonPaths, _, _ = ConfigCandidatePaths("/tmp/mine.conf")
	assert.Equal(t, "/tmp/mine.conf", jsonPaths[0])

	if runtime.GOOS != "windows" {
		_, yamlPaths, _ = ConfigCandidatePaths("")
		assert.Contains(t, yamlPaths, "/etc/sweepmap/sweepmap.yml")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c.json")
	require.NoError(t, EnsureDir(target))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))
}
