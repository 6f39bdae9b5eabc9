package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsFrom(t *testing.T) {
	base := filepath.Join("some", "base")
	paths := PathsFrom(base)

	assert.Equal(t, base, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "data", "raw"), paths.RawDir)
	assert.Equal(t, filepath.Join(base, "data", "processed"), paths.ProcessedDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)

	assert.Equal(t, filepath.Join(base, "data", "raw", WDPACSVName), paths.WDPACSV)
	assert.Equal(t, filepath.Join(base, "data", SitesJSONName), paths.SitesJSON)
	assert.Equal(t, filepath.Join(base, "data", "processed", ComponentsJSONName), paths.ComponentsJSON)
	assert.Equal(t, filepath.Join(base, "data", "processed", MappingJSONName), paths.MappingJSON)
}

func TestPaths_ApplyOverrides(t *testing.T) {
	base := filepath.Join("some", "base")

	tests := []struct {
		name        string
		overrides   PathsConfig
		wantDataDir string
		wantLogsDir string
	}{
		{
			name:        "empty overrides keep defaults",
			overrides:   PathsConfig{},
			wantDataDir: filepath.Join(base, "data"),
			wantLogsDir: filepath.Join(base, "logs"),
		},
		{
			name:        "data dir override moves the whole data tree",
			overrides:   PathsConfig{DataDir: filepath.Join("srv", "wdpa", "data")},
			wantDataDir: filepath.Join("srv", "wdpa", "data"),
			wantLogsDir: filepath.Join(base, "logs"),
		},
		{
			name:        "logs dir override leaves data alone",
			overrides:   PathsConfig{LogsDir: filepath.Join("var", "log", "wdpa")},
			wantDataDir: filepath.Join(base, "data"),
			wantLogsDir: filepath.Join("var", "log", "wdpa"),
		},
		{
			name:        "both overridden",
			overrides:   PathsConfig{DataDir: filepath.Join("d"), LogsDir: filepath.Join("l")},
			wantDataDir: "d",
			wantLogsDir: "l",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := PathsFrom(base)
			paths.ApplyOverrides(tt.overrides)

			assert.Equal(t, tt.wantDataDir, paths.DataDir)
			assert.Equal(t, tt.wantLogsDir, paths.LogsDir)

			// Derived locations follow the data root
			assert.Equal(t, filepath.Join(tt.wantDataDir, "raw", WDPACSVName), paths.WDPACSV)
			assert.Equal(t, filepath.Join(tt.wantDataDir, SitesJSONName), paths.SitesJSON)
			assert.Equal(t, filepath.Join(tt.wantDataDir, "processed", ComponentsJSONName), paths.ComponentsJSON)
			assert.Equal(t, filepath.Join(tt.wantDataDir, "processed", MappingJSONName), paths.MappingJSON)
		})
	}
}

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)
	require.NotNil(t, paths)

	// Rooted at the executable directory, never the working directory
	assert.True(t, filepath.IsAbs(paths.ExecutableDir))
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "data"), paths.DataDir)
}

func TestEnsureDirectories(t *testing.T) {
	paths := PathsFrom(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.RawDir, paths.ProcessedDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing directories
	assert.NoError(t, paths.EnsureDirectories())
}

func TestGetLogPath(t *testing.T) {
	paths := PathsFrom(filepath.Join("base"))
	assert.Equal(t, filepath.Join("base", "logs", "extractwdpa.log"), paths.GetLogPath("extractwdpa.log"))
}
