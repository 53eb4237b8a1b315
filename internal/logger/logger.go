package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/guildhall/backend-go/internal/config"
)

// ServiceName is attached to every record as the "service" attribute
const ServiceName = "guildhall"

type ctxKey struct{}

func New(cfg *config.Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds the application logger on top of w and installs it as
// the slog default. Every record carries the service name and environment.
func NewWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", ServiceName),
		slog.String("env", cfg.AppEnv),
	)

	slog.SetDefault(logger)

	return logger
}

// WithContext returns a copy of ctx carrying l
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request-scoped logger stored by WithContext, or
// fallback when ctx has none.
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
