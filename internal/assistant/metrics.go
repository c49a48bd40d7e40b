package assistant

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	toolOutcome_Succeeded = "succeeded"
	toolOutcome_Rejected  = "rejected"
	toolOutcome_Failed    = "failed"
	toolOutcome_NotFound  = "not_found"
)

var (
	toolInvocations = telemetry.MustInt64Counter(
		"assistant",
		"tool_invocations_total",
		"Total tool invocations requested by the model",
	)
	toolDuration = telemetry.MustFloat64Histogram(
		"assistant",
		"tool_invocation_duration_seconds",
		"Duration of tool invocations",
		"s",
	)
)

// recordToolInvocation records the outcome and duration of a tool invocation.
func recordToolInvocation(ctx context.Context, tool, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	)
	toolInvocations.Add(ctx, 1, attrs)
	toolDuration.Record(ctx, elapsed.Seconds(), attrs)
}
