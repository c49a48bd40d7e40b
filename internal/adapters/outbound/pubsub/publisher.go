package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/trace"
)

// TurnEventPublisher implements domain.ChatTurnEventPublisher using Google Cloud Pub/Sub
type TurnEventPublisher struct {
	client *pubsubV2.Client
	topic  string
}

// NewTurnEventPublisher creates a new instance of TurnEventPublisher
func NewTurnEventPublisher(client *pubsubV2.Client, topic string) TurnEventPublisher {
	return TurnEventPublisher{client: client, topic: topic}
}

// PublishTurnCompleted publishes the event as JSON to the configured topic
func (p TurnEventPublisher) PublishTurnCompleted(ctx context.Context, event domain.ChatTurnCompletedEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			telemetry.AttrEventID.String(event.ID.String()),
			telemetry.AttrEventType.String(event.Type),
			telemetry.AttrTopic.String(p.topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal turn event: %w", err)
	}

	result := p.client.Publisher(p.topic).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": event.Type,
			"agent_id":   event.AgentID,
			"session_id": event.SessionID,
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// LogTurnEventPublisher writes turn events to the logger. It is used when
// no Pub/Sub project is configured.
type LogTurnEventPublisher struct {
	logger *log.Logger
}

// NewLogTurnEventPublisher creates a new instance of LogTurnEventPublisher
func NewLogTurnEventPublisher(logger *log.Logger) LogTurnEventPublisher {
	return LogTurnEventPublisher{logger: logger}
}

// PublishTurnCompleted logs a one-line summary of the event
func (p LogTurnEventPublisher) PublishTurnCompleted(_ context.Context, event domain.ChatTurnCompletedEvent) error {
	p.logger.Printf(
		"TurnEvent: %s agent=%s session=%s outcome=%s tool_calls=%d total_tokens=%d",
		event.Type, event.AgentID, event.SessionID, event.Outcome, len(event.ToolCalls), event.Usage.TotalTokens,
	)
	return nil
}

// InitPublisher registers the domain.ChatTurnEventPublisher implementation
type InitPublisher struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID" default:"-"`
	Topic     string      `config:"CHAT_TURN_EVENTS_TOPIC" default:"chat-turn-events"`
}

// Initialize registers the Pub/Sub publisher, or the logging publisher when Pub/Sub is disabled
func (i InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.ProjectID == "-" {
		depend.Register[domain.ChatTurnEventPublisher](NewLogTurnEventPublisher(i.Logger))
		return ctx, nil
	}

	client, err := depend.Resolve[*pubsubV2.Client]()
	if err != nil {
		return ctx, fmt.Errorf("failed to resolve pubsub client: %w", err)
	}
	depend.Register[domain.ChatTurnEventPublisher](NewTurnEventPublisher(client, i.Topic))
	return ctx, nil
}
