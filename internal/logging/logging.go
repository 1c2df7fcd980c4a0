// Package logging provides structured logging for the p2quantile tool.
//
// It wraps log/slog so every component logs the same way:
//
//	logging.Init(slog.LevelInfo, false)
//	log := logging.Component("source")
//	log.Warn("skipping line", "line", 12, "error", err)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the global logger instance.
var Logger *slog.Logger

// Init initializes the global logger writing to stderr, so that results on
// stdout stay machine readable.
func Init(level slog.Level, jsonFormat bool) {
	InitWithWriter(os.Stderr, level, jsonFormat)
}

// InitWithWriter initializes the global logger writing to w.
func InitWithWriter(w io.Writer, level slog.Level, jsonFormat bool) {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// ParseLevel maps a configuration value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Component returns a logger for a specific component.
//
//	log := logging.Component("tracker")
//	log.Info("done") // time=... level=INFO msg=done component=tracker
func Component(name string) *slog.Logger {
	if Logger == nil {
		Init(slog.LevelInfo, false)
	}
	return Logger.With("component", name)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	if Logger == nil {
		Init(slog.LevelInfo, false)
	}
	Logger.Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	if Logger == nil {
		Init(slog.LevelInfo, false)
	}
	Logger.Info(msg, args...)
}

// Warn logs at warning level.
func Warn(msg string, args ...any) {
	if Logger == nil {
		Init(slog.LevelInfo, false)
	}
	Logger.Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	if Logger == nil {
		Init(slog.LevelInfo, false)
	}
	Logger.Error(msg, args...)
}
