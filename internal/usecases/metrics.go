package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter("usecases")
	LLMTokensUsed metric.Int64Counter
	ChatTurns     metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Total chat turns by agent and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordChatTurn records a completed chat turn.
func RecordChatTurn(ctx context.Context, agentID string, outcome domain.ChatOutcome) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("agent", agentID),
		attribute.String("outcome", string(outcome)),
	))
}
