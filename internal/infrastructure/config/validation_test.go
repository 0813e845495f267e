package config

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty levels disable snapping", mutate: func(c *Config) { c.Zoom.Levels = nil }},
		{
			name:    "zero level",
			mutate:  func(c *Config) { c.Zoom.Levels = []float64{1, 0} },
			wantErr: []string{"zoom.levels[1] must be greater than 0"},
		},
		{
			name:    "nan level",
			mutate:  func(c *Config) { c.Zoom.Levels = []float64{math.NaN()} },
			wantErr: []string{"zoom.levels[0] must be a finite number"},
		},
		{
			name:    "infinite image width",
			mutate:  func(c *Config) { c.Viewport.ImageWidth = math.Inf(1) },
			wantErr: []string{"viewport.image_width must be a finite number"},
		},
		{
			name:    "bad profile name",
			mutate:  func(c *Config) { c.Zoom.Profile = "Deep Zoom" },
			wantErr: []string{"zoom.profile must be 1-64 characters"},
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: []string{"logging.format must be one of: console json"},
		},
		{
			name:    "negative animation",
			mutate:  func(c *Config) { c.Viewport.AnimationTimeMS = -1 },
			wantErr: []string{"viewport.animation_time_ms must be greater than or equal to 0"},
		},
		{
			name:    "pinned bounds inverted",
			mutate:  func(c *Config) { c.Viewport.MinZoomLevel = 4; c.Viewport.MaxZoomLevel = 2 },
			wantErr: []string{"viewport.min_zoom_level (4) must not exceed viewport.max_zoom_level (2)"},
		},
		{
			name: "errors are aggregated",
			mutate: func(c *Config) {
				c.Viewport.ContainerWidth = 0
				c.Profiles.CacheSize = -1
			},
			wantErr: []string{"viewport.container_width", "profiles.cache_size"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed:")
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, schemaID, schema["$id"])
	assert.Contains(t, string(data), `"container_width"`)
	assert.Contains(t, string(data), "Permitted image-space zoom levels")
}
