// Package config loads, validates and watches the zoomlevels configuration.
package config

import "time"

// Config represents the complete configuration for zoomlevels.
type Config struct {
	Zoom     ZoomConfig     `mapstructure:"zoom" toml:"zoom" json:"zoom"`
	Viewport ViewportConfig `mapstructure:"viewport" toml:"viewport" json:"viewport"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Profiles ProfilesConfig `mapstructure:"profiles" toml:"profiles" json:"profiles"`
}

// ZoomConfig selects the permitted zoom levels.
type ZoomConfig struct {
	// Levels are image-space zoom factors (1.0 = one image pixel per screen pixel).
	// Order does not matter; an empty list disables snapping.
	Levels []float64 `mapstructure:"levels" toml:"levels" json:"levels" validate:"dive,finite,gt=0" jsonschema:"description=Permitted image-space zoom levels"` //nolint:lll // struct tags
	// Profile names a stored level profile. When set it takes precedence over Levels.
	Profile string `mapstructure:"profile" toml:"profile" json:"profile" validate:"omitempty,profile_name" jsonschema:"description=Stored level profile to use instead of levels"` //nolint:lll // struct tags
}

// ViewportConfig describes the simulated host viewport.
type ViewportConfig struct {
	ContainerWidth  float64 `mapstructure:"container_width" toml:"container_width" json:"container_width" validate:"finite,gt=0"`
	ContainerHeight float64 `mapstructure:"container_height" toml:"container_height" json:"container_height" validate:"finite,gt=0"`
	ImageWidth      float64 `mapstructure:"image_width" toml:"image_width" json:"image_width" validate:"finite,gt=0"`
	ImageHeight     float64 `mapstructure:"image_height" toml:"image_height" json:"image_height" validate:"finite,gt=0"`

	AnimationTimeMS int     `mapstructure:"animation_time_ms" toml:"animation_time_ms" json:"animation_time_ms" validate:"gte=0"`
	SpringStiffness float64 `mapstructure:"spring_stiffness" toml:"spring_stiffness" json:"spring_stiffness" validate:"finite,gte=0"`

	MinZoomImageRatio float64 `mapstructure:"min_zoom_image_ratio" toml:"min_zoom_image_ratio" json:"min_zoom_image_ratio" validate:"finite,gt=0"`
	MaxZoomPixelRatio float64 `mapstructure:"max_zoom_pixel_ratio" toml:"max_zoom_pixel_ratio" json:"max_zoom_pixel_ratio" validate:"finite,gt=0"`
	// MinZoomLevel and MaxZoomLevel pin the zoom bounds in viewport space. Zero derives them.
	MinZoomLevel float64 `mapstructure:"min_zoom_level" toml:"min_zoom_level" json:"min_zoom_level" validate:"finite,gte=0"`
	MaxZoomLevel float64 `mapstructure:"max_zoom_level" toml:"max_zoom_level" json:"max_zoom_level" validate:"finite,gte=0"`
}

// AnimationTime returns the zoom animation duration.
func (v ViewportConfig) AnimationTime() time.Duration {
	return time.Duration(v.AnimationTimeMS) * time.Millisecond
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" validate:"omitempty,oneof=trace debug info warn warning error disabled off"`
	Format string `mapstructure:"format" toml:"format" json:"format" validate:"omitempty,oneof=console json"`
	// File enables a rotated JSON log file in addition to stderr.
	File       string `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" validate:"gte=0"`
}

// DatabaseConfig holds the profile store location.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/zoomlevels/zoomlevels.db.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// ProfilesConfig tunes the profile store.
type ProfilesConfig struct {
	CacheSize int `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" validate:"gte=0,lte=4096"`
}
