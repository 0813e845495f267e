package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// explicitFile is set when the caller pinned a config file path.
	explicitFile string
}

// NewManager creates a configuration manager that searches the XDG config
// directory and then the working directory for config.toml.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return newManager(v, "")
}

// NewManagerForFile creates a configuration manager bound to a specific file.
// The file is created with defaults on first Load if it does not exist.
func NewManagerForFile(path string) (*Manager, error) {
	if path == "" {
		return NewManager()
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, path)
}

func newManager(v *viper.Viper, explicitFile string) (*Manager, error) {
	// ZOOMLEVELS_ZOOM_LEVELS, ZOOMLEVELS_VIEWPORT_IMAGE_WIDTH, ...
	v.SetEnvPrefix("ZOOMLEVELS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "ZOOMLEVELS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ZOOMLEVELS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ZOOMLEVELS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ZOOMLEVELS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:        v,
		callbacks:    make([]func(*Config), 0),
		explicitFile: explicitFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configPath(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// buildConfig unmarshals, fills derived paths, normalizes and validates.
func (m *Manager) buildConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Zoom.Profile = strings.TrimSpace(config.Zoom.Profile)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Zoom.Levels = slices.Clone(m.config.Zoom.Levels)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configPath()
}

func (m *Manager) configPath() string {
	if m.explicitFile != "" {
		return m.explicitFile
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return configFile
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if m.explicitFile == "" {
		m.viper.SetConfigFile(configFile)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is derived in Load when empty
	m.viper.SetDefault("database.path", "")

	m.setZoomDefaults(defaults)
	m.setViewportDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setProfilesDefaults(defaults)
}

func (m *Manager) setZoomDefaults(defaults *Config) {
	m.viper.SetDefault("zoom.levels", defaults.Zoom.Levels)
	m.viper.SetDefault("zoom.profile", defaults.Zoom.Profile)
}

func (m *Manager) setViewportDefaults(defaults *Config) {
	m.viper.SetDefault("viewport.container_width", defaults.Viewport.ContainerWidth)
	m.viper.SetDefault("viewport.container_height", defaults.Viewport.ContainerHeight)
	m.viper.SetDefault("viewport.image_width", defaults.Viewport.ImageWidth)
	m.viper.SetDefault("viewport.image_height", defaults.Viewport.ImageHeight)
	m.viper.SetDefault("viewport.animation_time_ms", defaults.Viewport.AnimationTimeMS)
	m.viper.SetDefault("viewport.spring_stiffness", defaults.Viewport.SpringStiffness)
	m.viper.SetDefault("viewport.min_zoom_image_ratio", defaults.Viewport.MinZoomImageRatio)
	m.viper.SetDefault("viewport.max_zoom_pixel_ratio", defaults.Viewport.MaxZoomPixelRatio)
	m.viper.SetDefault("viewport.min_zoom_level", defaults.Viewport.MinZoomLevel)
	m.viper.SetDefault("viewport.max_zoom_level", defaults.Viewport.MaxZoomLevel)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setProfilesDefaults(defaults *Config) {
	m.viper.SetDefault("profiles.cache_size", defaults.Profiles.CacheSize)
}
