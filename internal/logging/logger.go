// Package logging builds the zap loggers used across the portfolio.
// Log output goes to a file (or stderr) so the terminal host owns stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config resolution
	CategoryCarousel Category = "carousel" // Navigation controller, timers
	CategoryCatalog  Category = "catalog"  // Item loading and reloads
	CategoryPrefs    Category = "prefs"    // Viewer preferences
	CategoryUI       Category = "ui"       // Terminal host
	CategoryWatch    Category = "watch"    // File watchers
)

// Options mirrors config.LoggingConfig plus the --verbose flag.
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // json, text
	File    string // empty writes to stderr
	Verbose bool   // forces debug
}

// New builds a logger from options. The returned logger should be synced
// by the caller on exit.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	if strings.EqualFold(opts.Format, "text") || strings.EqualFold(opts.Format, "console") {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	output := "stderr"
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		output = opts.File
	}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// For returns a child logger named after the category. A nil logger
// yields a no-op logger.
func For(l *zap.Logger, cat Category) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.Named(string(cat))
}

// ParseLevel converts a level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
