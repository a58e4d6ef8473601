// Package logging wires zerolog into the application and carries a logger
// through context.Context so every layer logs with the fields of its caller.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Field names shared by every layer.
const (
	FieldLayer    = "layer"
	FieldAdapter  = "adapter"
	FieldUseCase  = "usecase"
	FieldHandler  = "handler"
	FieldMethod   = "method"
	FieldPath     = "path"
	FieldHost     = "host"
	FieldClientIP = "client_ip"
	FieldStatus   = "status"
	FieldDuration = "duration"
	FieldSize     = "size"
	FieldEvent    = "event"
)

// Logger is a zerolog.Logger with error wrapping helpers.
type Logger struct {
	zerolog.Logger
}

// Config controls level and output format.
type Config struct {
	Level  string
	Format string // "console" or "json"
}

// FileConfig enables an additional rotating log file.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type ctxKey struct{}

// Default returns a console logger at info level.
func Default() Logger {
	return New(Config{Level: "info", Format: "console"})
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return Logger{zerolog.Nop()}
}

// New builds a logger writing to stderr.
func New(cfg Config) Logger {
	return newWithWriter(cfg, consoleOrJSON(cfg.Format, os.Stderr))
}

// NewWithFile builds a logger writing to stderr and to a rotated file.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fc FileConfig) (Logger, func(), error) {
	if !fc.Enabled {
		return New(cfg), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(fc.Path), 0o700); err != nil {
		return Logger{}, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   fc.Path,
		MaxSize:    fc.MaxSize,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAge,
		Compress:   fc.Compress,
	}

	w := io.MultiWriter(consoleOrJSON(cfg.Format, os.Stderr), file)
	return newWithWriter(cfg, w), func() { _ = file.Close() }, nil
}

// NewWithWriter builds a JSON logger on w. Used by tests that inspect output.
func NewWithWriter(level string, w io.Writer) Logger {
	return newWithWriter(Config{Level: level, Format: "json"}, w)
}

func newWithWriter(cfg Config, w io.Writer) Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	return Logger{zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

func consoleOrJSON(format string, w io.Writer) io.Writer {
	if format == "json" {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
}

// With returns a child logger carrying the given fields.
func (l Logger) With(fields map[string]any) Logger {
	return Logger{l.Logger.With().Fields(fields).Logger()}
}

// WrapErr logs err at error level and returns it wrapped with msg.
func (l Logger) WrapErr(err error, msg string) error {
	l.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrf is WrapErr with a formatted message.
func (l Logger) WrapErrf(err error, format string, args ...any) error {
	return l.WrapErr(err, fmt.Sprintf(format, args...))
}

// WithCtx stores the logger in ctx.
func WithCtx(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx returns the logger stored in ctx, or Default when there is none.
func FromCtx(ctx context.Context) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
			return l
		}
	}
	return Default()
}

// CtxWithFields returns a context whose logger carries the extra fields.
func CtxWithFields(ctx context.Context, fields map[string]any) context.Context {
	return WithCtx(ctx, FromCtx(ctx).With(fields))
}
