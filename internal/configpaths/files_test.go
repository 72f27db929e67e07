package configpaths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ploiu/padmap/internal/configpaths"
)

func TestConfigCandidatePathsUserFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"custom.toml", "toml"},
		{"custom.yaml", "yaml"},
		{"custom.yml", "yaml"},
		{"custom.json", "json"},
		{"custom.conf", "json"},
	}
	for _, tt := range tests {
		jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(tt.path)
		byFormat := map[string][]string{"json": jsonPaths, "yaml": yamlPaths, "toml": tomlPaths}
		require.NotEmpty(t, byFormat[tt.want])
		assert.Equal(t, tt.path, byFormat[tt.want][0], "user path must come first for %s", tt.path)
	}
}

func TestConfigCandidatePathsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths("")
	assert.NotEmpty(t, jsonPaths)
	assert.NotEmpty(t, yamlPaths)
	assert.NotEmpty(t, tomlPaths)
	for _, p := range tomlPaths {
		assert.Contains(t, p, ".toml")
	}
}

func TestDefaultConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Contains(t, got, "padmap")
	assert.Contains(t, got, dir)
}
