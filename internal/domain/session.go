package domain

import (
	"context"
	"time"
)

// SessionKey identifies the history of one agent within a chat session.
type SessionKey struct {
	SessionID string
	AgentID   string
}

// ChatHistoryRepository keeps chat session histories. Histories live in
// process memory and are lost on restart.
type ChatHistoryRepository interface {
	// ListMessages returns the session messages ordered by creation time.
	ListMessages(ctx context.Context, key SessionKey) ([]StoredChatMessage, error)
	// AppendMessages appends messages to the session, creating it when needed.
	AppendMessages(ctx context.Context, key SessionKey, messages []StoredChatMessage) error
	// DeleteSession removes the session history.
	DeleteSession(ctx context.Context, key SessionKey) error
	// EvictIdle removes sessions without activity since the given time and
	// returns how many were removed.
	EvictIdle(ctx context.Context, before time.Time) (int, error)
}
