package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType_ChatTurnCompleted is the event type of ChatTurnCompletedEvent.
const EventType_ChatTurnCompleted = "CHAT_TURN_COMPLETED"

// ChatTurnCompletedEvent is emitted after each chat turn.
type ChatTurnCompletedEvent struct {
	ID          uuid.UUID        `json:"id"`
	Type        string           `json:"type"`
	SessionID   string           `json:"session_id"`
	AgentID     string           `json:"agent_id"`
	Outcome     ChatOutcome      `json:"outcome"`
	ToolCalls   []ToolInvocation `json:"tool_calls"`
	Usage       LLMUsage         `json:"usage"`
	CompletedAt time.Time        `json:"completed_at"`
}

// ChatTurnEventPublisher publishes chat turn events.
type ChatTurnEventPublisher interface {
	PublishTurnCompleted(ctx context.Context, event ChatTurnCompletedEvent) error
}
