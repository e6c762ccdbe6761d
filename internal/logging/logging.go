// Package logging wraps log/slog with the handful of knobs the CLI exposes.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is the minimum severity that gets written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Config selects level, format and destination.
type Config struct {
	Level   Level
	JSON    bool
	Quiet   bool      // discard everything
	Service string    // attached as "service" when set
	Output  io.Writer // defaults to os.Stderr
}

// Logger is a thin handle over *slog.Logger.
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New builds a Logger from config.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	if config.Quiet {
		out = io.Discard
	}
	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}

	var h slog.Handler
	if config.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	l := slog.New(h)
	if config.Service != "" {
		l = l.With("service", config.Service)
	}
	return &Logger{slog: l, config: config}
}

// Default is an info-level text logger on stderr.
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "oligotile"})
}

// Nop discards every record.
func Nop() *Logger {
	return New(Config{Quiet: true})
}

// With returns a child logger carrying args on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), config: l.config}
}

// Slog exposes the underlying logger.
func (l *Logger) Slog() *slog.Logger { return l.slog }

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }
