package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "trace", want: zerolog.TraceLevel},
		{input: "DEBUG", want: zerolog.DebugLevel},
		{input: " warn ", want: zerolog.WarnLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "off", want: zerolog.Disabled},
		{input: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewWithFile_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "zoomlevels.log")

	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{Path: path, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info().Str("profile", "slides").Msg("profile loaded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"profile":"slides"`)
	assert.Contains(t, string(data), `"message":"profile loaded"`)
}

func TestNewWithFile_EmptyPathFallsBackToStderr(t *testing.T) {
	_, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	cleanup()
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "snapper")
	ctx = WithViewportID(ctx, "vp-1")

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"snapper"`)
	assert.Contains(t, buf.String(), `"viewport_id":"vp-1"`)
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
