package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListChatMessages defines the interface for the ListChatMessages use case
type ListChatMessages interface {
	Query(ctx context.Context, sessionID, agentID string) ([]domain.StoredChatMessage, error)
}

// ListChatMessagesImpl is the implementation of the ListChatMessages use case
type ListChatMessagesImpl struct {
	registry    domain.AgentRegistry
	historyRepo domain.ChatHistoryRepository
}

// NewListChatMessagesImpl creates a new instance of ListChatMessagesImpl
func NewListChatMessagesImpl(registry domain.AgentRegistry, historyRepo domain.ChatHistoryRepository) ListChatMessagesImpl {
	return ListChatMessagesImpl{
		registry:    registry,
		historyRepo: historyRepo,
	}
}

// Query returns the messages exchanged with an agent in a session
func (l ListChatMessagesImpl) Query(ctx context.Context, sessionID, agentID string) ([]domain.StoredChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if _, err := l.registry.Get(agentID); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	messages, err := l.historyRepo.ListMessages(spanCtx, domain.SessionKey{SessionID: sessionID, AgentID: agentID})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	// Filter out tool and empty messages before returning to the user
	visible := make([]domain.StoredChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role != domain.ChatRole_Tool && len(msg.Content) > 0 {
			visible = append(visible, msg)
		}
	}
	return visible, nil
}

// InitListChatMessages is the initializer for the ListChatMessages use case
type InitListChatMessages struct {
	Registry    domain.AgentRegistry         `resolve:""`
	HistoryRepo domain.ChatHistoryRepository `resolve:""`
}

// Initialize registers the ListChatMessages use case in the dependency container
func (i InitListChatMessages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListChatMessages](NewListChatMessagesImpl(i.Registry, i.HistoryRepo))
	return ctx, nil
}
