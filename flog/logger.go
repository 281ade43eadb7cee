// Package flog provides Fury's process-wide logger, the Go counterpart
// of the source's module-level get_logger(): a single leveled logger,
// configured once from an environment variable, that every package in
// this module logs through rather than constructing its own.
package flog

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level mirrors the source's FURY_LOG_LEVEL values (debug/info/warn/error).
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) slogLevel() slog.Level {
	switch strings.ToLower(string(l)) {
	case string(LevelDebug):
		return slog.LevelDebug
	case string(LevelWarn):
		return slog.LevelWarn
	case string(LevelError):
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envLevel reads FURY_LOG_LEVEL, defaulting to "info" exactly as the
// source's get_logger() does with os.getenv("FURY_LOG_LEVEL", "info").
func envLevel() Level {
	if v := os.Getenv("FURY_LOG_LEVEL"); v != "" {
		return Level(v)
	}
	return LevelInfo
}

// New builds a logger at level, writing to w with source location
// (file:line) attached to every record, the Go counterpart of the
// source's "[%(filename)s:%(lineno)d]" formatter.
func New(level Level, w *os.File) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level.slogLevel(),
	})
	return slog.New(h)
}

var (
	defaultOnce   sync.Once
	defaultLogger *slog.Logger
)

// Default returns the process-wide logger named "fury", leveled from
// FURY_LOG_LEVEL (default "info") and built once on first use, the
// direct counterpart of the source's module-level `logger = get_logger()`.
func Default() *slog.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(envLevel(), os.Stderr).With("logger", "fury")
	})
	return defaultLogger
}
