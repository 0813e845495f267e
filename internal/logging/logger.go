// Package logging wires zerolog loggers and carries them through context.Context.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logDirPerm = 0o750

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig configures the optional rotated log file sink.
type FileConfig struct {
	Path       string // Empty disables file logging
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// WriteToStderr keeps the console/stderr output alongside the file.
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr with the given configuration
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, formatWriter(cfg, os.Stderr))
}

// NewWithFile creates a logger that also writes to a lumberjack-rotated file.
// The returned cleanup closes the file and must be called on shutdown.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if fileCfg.Path == "" {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(fileCfg.Path), logDirPerm); err != nil {
		return New(cfg), func() {}, err
	}

	rotator := &lumberjack.Logger{
		Filename:   fileCfg.Path,
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
	}

	// The file always gets JSON so it stays machine readable
	var output io.Writer = rotator
	if fileCfg.WriteToStderr {
		output = zerolog.MultiLevelWriter(formatWriter(cfg, os.Stderr), rotator)
	}

	cleanup := func() { _ = rotator.Close() }
	return newLogger(cfg, output), cleanup, nil
}

// NewFromEnv creates a logger based on environment variables
// ZOOMLEVELS_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// ZOOMLEVELS_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("ZOOMLEVELS_LOG_LEVEL"), os.Getenv("ZOOMLEVELS_LOG_FORMAT"))
}

// NewFromConfigValues creates a logger from raw level and format strings.
// Unknown values fall back to the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	if level != "" {
		cfg.Level = ParseLevel(level)
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return New(cfg)
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func formatWriter(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: cfg.TimeFormat,
	}
}

func newLogger(cfg Config, output io.Writer) zerolog.Logger {
	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
