package config

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const (
	defaultContainerWidth    = 1024
	defaultContainerHeight   = 768
	defaultImageWidth        = 4096
	defaultImageHeight       = 3072
	defaultAnimationTimeMS   = 1200
	defaultSpringStiffness   = 6.5
	defaultMinZoomImageRatio = 0.9
	defaultMaxZoomPixelRatio = 1.1

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	defaultProfileCacheSize = 32
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Zoom: ZoomConfig{
			Levels: []float64{0.25, 0.5, 1, 2, 4},
		},
		Viewport: ViewportConfig{
			ContainerWidth:    defaultContainerWidth,
			ContainerHeight:   defaultContainerHeight,
			ImageWidth:        defaultImageWidth,
			ImageHeight:       defaultImageHeight,
			AnimationTimeMS:   defaultAnimationTimeMS,
			SpringStiffness:   defaultSpringStiffness,
			MinZoomImageRatio: defaultMinZoomImageRatio,
			MaxZoomPixelRatio: defaultMaxZoomPixelRatio,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
		Profiles: ProfilesConfig{
			CacheSize: defaultProfileCacheSize,
		},
	}
}
