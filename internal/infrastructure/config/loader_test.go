package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerm))
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 1024.0, mgr.viper.GetFloat64("viewport.container_width"))
	assert.Equal(t, 1200, mgr.viper.GetInt("viewport.animation_time_ms"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, 32, mgr.viper.GetInt("profiles.cache_size"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)

	cfg := mgr.Get()
	assert.Equal(t, []float64{0.25, 0.5, 1, 2, 4}, cfg.Zoom.Levels)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
}

func TestManager_LoadFromExplicitFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "zoom.toml")
	writeConfig(t, path, `
[zoom]
levels = [8, 1, 2]

[viewport]
image_width = 2048
max_zoom_level = 3

[logging]
level = "DEBUG"
format = ""
`)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, []float64{8, 1, 2}, cfg.Zoom.Levels, "the snapper normalizes order, not the loader")
	assert.Equal(t, 2048.0, cfg.Viewport.ImageWidth)
	assert.Equal(t, 3.0, cfg.Viewport.MaxZoomLevel)
	assert.Equal(t, 1024.0, cfg.Viewport.ContainerWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadCreatesMissingExplicitFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "nested", "zoom.toml")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, path)
	assert.Equal(t, 4096.0, mgr.Get().Viewport.ImageWidth)
}

func TestManager_EnvOverridesFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "zoom.toml")
	writeConfig(t, path, "[viewport]\nimage_width = 2048\n")
	t.Setenv("ZOOMLEVELS_VIEWPORT_IMAGE_WIDTH", "8192")
	t.Setenv("ZOOMLEVELS_LOG_LEVEL", "warn")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 8192.0, cfg.Viewport.ImageWidth)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "zoom.toml")
	writeConfig(t, path, `
[zoom]
levels = [1, -2]

[viewport]
container_width = 0
`)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoom.levels[1]")
	assert.Contains(t, err.Error(), "viewport.container_width")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "zoom.toml")
	writeConfig(t, path, "[zoom\nlevels = 1")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManagerForFile(filepath.Join(t.TempDir(), "zoom.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Zoom.Levels[0] = 99
	cfg.Viewport.ImageWidth = 1

	assert.Equal(t, 0.25, mgr.Get().Zoom.Levels[0])
	assert.Equal(t, 4096.0, mgr.Get().Viewport.ImageWidth)
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "zoom.toml")
	writeConfig(t, path, "[zoom]\nlevels = [1, 2]\n")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg) })

	writeConfig(t, path, "[zoom]\nlevels = [1, 2, 4]\nprofile = \"slides\"\n")
	require.NoError(t, mgr.Reload())

	require.Len(t, got, 1)
	assert.Equal(t, []float64{1, 2, 4}, got[0].Zoom.Levels)
	assert.Equal(t, "slides", got[0].Zoom.Profile)
	assert.Equal(t, []float64{1, 2, 4}, mgr.Get().Zoom.Levels)
}

func TestManager_ReloadKeepsPreviousOnInvalidChange(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "zoom.toml")
	writeConfig(t, path, "[zoom]\nlevels = [1, 2]\n")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeConfig(t, path, "[zoom]\nprofile = \"Not Valid\"\n")
	require.Error(t, mgr.Reload())

	assert.False(t, called)
	assert.Equal(t, []float64{1, 2}, mgr.Get().Zoom.Levels)
}
