package logger_test

import (
	"bytes"
	"context"
	"testing"

	loginfra "github.com/bionicotaku/lingo-services-hello/internal/infrastructure/logger"
	"github.com/bionicotaku/lingo-services-hello/internal/metadata"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestWithTraceContext_AddsCorrelationFields(t *testing.T) {
	var buf bytes.Buffer
	logger := loginfra.WithTraceContext(log.NewStdLogger(&buf))

	traceID, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})

	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = metadata.Inject(ctx, metadata.HandlerMetadata{RequestID: "req-7"})
	log.NewHelper(logger).WithContext(ctx).Info("relay")

	out := buf.String()
	require.Contains(t, out, "trace_id=0af7651916cd43dd8448eb211c80319c")
	require.Contains(t, out, "span_id=b7ad6b7169203331")
	require.Contains(t, out, "request_id=req-7")
	require.Contains(t, out, "msg=relay")
}

func TestWithTraceContext_EmptyWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := loginfra.WithTraceContext(log.NewStdLogger(&buf))

	log.NewHelper(logger).WithContext(context.Background()).Info("plain")
	require.Contains(t, buf.String(), "trace_id= ")
}

func TestNewLogger_BuildsWithDefaults(t *testing.T) {
	logger, err := loginfra.NewLogger(loginfra.Config{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
