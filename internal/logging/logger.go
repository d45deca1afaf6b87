// Package logging builds the zap loggers used by numclass.
// Logs are written to stderr (or a configured file) so that stdout carries
// only classification output. Each subsystem logs through a named category
// logger that can be switched off in the config file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"numclass/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryCLI      Category = "cli"      // Command dispatch, flag handling
	CategoryConfig   Category = "config"   // Config file loading
	CategoryClassify Category = "classify" // Classification passes
	CategoryRender   Category = "render"   // Output rendering
)

// Logger carries the root zap logger plus the per-category switches.
type Logger struct {
	root *zap.Logger
	cfg  config.LoggingConfig
}

// New builds a logger from cfg. verbose forces debug level regardless of
// the configured level.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.Encoding = "console"
	if cfg.Format == "json" {
		zc.Encoding = "json"
	}
	if zc.Encoding == "console" {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
	}

	root, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{root: root, cfg: cfg}, nil
}

// Wrap adapts an existing zap logger, e.g. a zaptest or nop logger.
func Wrap(l *zap.Logger, cfg config.LoggingConfig) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{root: l, cfg: cfg}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return Wrap(zap.NewNop(), config.LoggingConfig{})
}

// With returns a logger whose entries all carry fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{root: l.root.With(fields...), cfg: l.cfg}
}

// Get returns the logger for a category. Disabled categories get a no-op
// logger.
func (l *Logger) Get(category Category) *zap.Logger {
	if !l.cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.root.Named(string(category))
}

// Root returns the uncategorised logger.
func (l *Logger) Root() *zap.Logger {
	return l.root
}

// Sync flushes buffered entries. Errors from syncing stderr on some
// platforms are ignored.
func (l *Logger) Sync() {
	_ = l.root.Sync()
}

// parseLevel expects a validated, lowercase level name.
func parseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
