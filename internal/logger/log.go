package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"mindtree/internal/config"

	"gopkg.in/lumberjack.v2"
)

type ctxKey struct{}

// Init installs a JSON slog handler as the process default. Output goes to
// stdout, a rotated file, or both.
func Init(cfg config.LogConfig) {
	InitTo(output(cfg), cfg.Level)
	Info("logger initialized", "level", cfg.Level, "file", cfg.File)
}

// InitTo installs the JSON handler on w. Command line tools use it to keep
// stdout for their own output.
func InitTo(w io.Writer, level string) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})))
}

func output(cfg config.LogConfig) io.Writer {
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	switch len(writers) {
	case 0:
		return os.Stdout
	case 1:
		return writers[0]
	}
	return io.MultiWriter(writers...)
}

func Info(msg string, args ...any) { slog.Info(msg, args...) }

// WithRequestID stores the request id so downstream logs can pick it up.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// From returns the default logger tagged with the request id, if any.
func From(ctx context.Context) *slog.Logger {
	if id := RequestID(ctx); id != "" {
		return slog.Default().With("request_id", id)
	}
	return slog.Default()
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
