package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/cleitonmarx/symbiont-agenthub")

// Span attributes shared by the chat turn, tool and event spans.
const (
	AttrAgentID     = attribute.Key("agent.id")
	AttrSessionID   = attribute.Key("session.id")
	AttrToolName    = attribute.Key("tool.name")
	AttrToolOutcome = attribute.Key("tool.outcome")
	AttrEventID     = attribute.Key("event.id")
	AttrEventType   = attribute.Key("event.type")
	AttrTopic       = attribute.Key("messaging.destination")
)

// SpanNameFormatter names HTTP spans after the matched route pattern, e.g.
// "POST /api/v1/agents/{agent_id}/chat", so path parameters do not explode
// span cardinality.
func SpanNameFormatter(_ string, r *http.Request) string {
	return getHttpRoute(r)
}

func getHttpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start opens a span named after the calling function, e.g.
// "usecases::ChatWithAgentImpl::Execute".
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, getCallerName(2), opts...)
}

// StartNamed opens a span whose name is only known at runtime, such as the
// tool being invoked.
func StartNamed(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, opts...)
}

// RecordErrorAndStatus marks the span as failed when err is set and as OK
// otherwise. It reports whether err was set, so callers can branch on it.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return true
	}
	span.SetStatus(codes.Ok, "OK")
	return false
}

// HttpHandler instruments h, reporting it as operation.
func HttpHandler(h http.Handler, operation string) http.Handler {
	return Middleware(operation)(h)
}

// Middleware is the HttpHandler form used by generated routers.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(
			WithHttpMetricAttributes,
		),
	)
}

func getCallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")

	return strings.ReplaceAll(parts[len(parts)-1], ".", "::")
}

// newTracerProvider batches spans to the OTLP HTTP endpoint configured
// through the standard OTEL_EXPORTER_OTLP_* variables.
func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	otlpExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(otlpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
		sdktrace.WithResource(res),
	)
	return tracerProvider, otlpExporter, nil
}
