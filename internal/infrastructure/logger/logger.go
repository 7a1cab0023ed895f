// Package logger builds the structured Kratos logger shared by every component.
package logger

import (
	"context"
	"os"

	"github.com/bionicotaku/lingo-services-hello/internal/metadata"

	gclog "github.com/bionicotaku/lingo-utils/gclog"

	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel/trace"
)

// Config captures runtime metadata used to annotate logs.
type Config struct {
	Service string
	Version string
	HostID  string
	Env     string
}

// NewLogger builds a Kratos-compatible logger with trace/span enrichment.
func NewLogger(cfg Config) (log.Logger, error) {
	cfg = withDefaults(cfg)
	baseLogger, err := gclog.NewLogger(
		gclog.WithService(cfg.Service),
		gclog.WithVersion(cfg.Version),
		gclog.WithEnvironment(cfg.Env),
		gclog.WithStaticLabels(map[string]string{"service.id": cfg.HostID}),
		gclog.EnableSourceLocation(),
	)
	if err != nil {
		return nil, err
	}
	return WithTraceContext(baseLogger), nil
}

// WithTraceContext appends trace_id/span_id valuers resolved from the OpenTelemetry span in ctx,
// plus the request_id assigned by the HTTP request-id filter.
func WithTraceContext(base log.Logger) log.Logger {
	return log.With(
		base,
		"trace_id", log.Valuer(func(ctx context.Context) interface{} {
			sc := trace.SpanContextFromContext(ctx)
			if sc.HasTraceID() {
				return sc.TraceID().String()
			}
			return ""
		}),
		"span_id", log.Valuer(func(ctx context.Context) interface{} {
			sc := trace.SpanContextFromContext(ctx)
			if sc.HasSpanID() {
				return sc.SpanID().String()
			}
			return ""
		}),
		"request_id", log.Valuer(func(ctx context.Context) interface{} {
			if meta, ok := metadata.FromContext(ctx); ok {
				return meta.RequestID
			}
			return ""
		}),
	)
}

func withDefaults(cfg Config) Config {
	if cfg.Service == "" {
		cfg.Service = "hello-world"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if cfg.HostID == "" {
		cfg.HostID, _ = os.Hostname()
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	return cfg
}
