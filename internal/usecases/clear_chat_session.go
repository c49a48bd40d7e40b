package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ClearChatSession defines the interface for the ClearChatSession use case
type ClearChatSession interface {
	Execute(ctx context.Context, sessionID, agentID string) error
}

// ClearChatSessionImpl is the implementation of the ClearChatSession use case
type ClearChatSessionImpl struct {
	registry    domain.AgentRegistry
	historyRepo domain.ChatHistoryRepository
}

// NewClearChatSessionImpl creates a new instance of ClearChatSessionImpl
func NewClearChatSessionImpl(registry domain.AgentRegistry, historyRepo domain.ChatHistoryRepository) ClearChatSessionImpl {
	return ClearChatSessionImpl{
		registry:    registry,
		historyRepo: historyRepo,
	}
}

// Execute deletes the history of an agent in a session
func (c ClearChatSessionImpl) Execute(ctx context.Context, sessionID, agentID string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if _, err := c.registry.Get(agentID); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err := c.historyRepo.DeleteSession(spanCtx, domain.SessionKey{SessionID: sessionID, AgentID: agentID})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitClearChatSession is the initializer for the ClearChatSession use case
type InitClearChatSession struct {
	Registry    domain.AgentRegistry         `resolve:""`
	HistoryRepo domain.ChatHistoryRepository `resolve:""`
}

// Initialize registers the ClearChatSession use case in the dependency container
func (i InitClearChatSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ClearChatSession](NewClearChatSessionImpl(i.Registry, i.HistoryRepo))
	return ctx, nil
}
