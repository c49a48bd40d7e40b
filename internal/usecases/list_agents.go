package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListAgents defines the interface for the ListAgents use case
type ListAgents interface {
	Query(ctx context.Context) ([]domain.AgentConfig, error)
}

// ListAgentsImpl is the implementation of the ListAgents use case
type ListAgentsImpl struct {
	registry domain.AgentRegistry
}

// NewListAgentsImpl creates a new instance of ListAgentsImpl
func NewListAgentsImpl(registry domain.AgentRegistry) ListAgentsImpl {
	return ListAgentsImpl{registry: registry}
}

// Query returns the configured agents in display order
func (l ListAgentsImpl) Query(ctx context.Context) ([]domain.AgentConfig, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	ids := l.registry.IDs()
	agents := make([]domain.AgentConfig, 0, len(ids))
	for _, id := range ids {
		agent, err := l.registry.Get(id)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

// InitListAgents is the initializer for the ListAgents use case
type InitListAgents struct {
	Registry domain.AgentRegistry `resolve:""`
}

// Initialize registers the ListAgents use case in the dependency container
func (i InitListAgents) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListAgents](NewListAgentsImpl(i.Registry))
	return ctx, nil
}
