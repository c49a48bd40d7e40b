package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetAgent defines the interface for the GetAgent use case
type GetAgent interface {
	Query(ctx context.Context, agentID string) (domain.AgentConfig, error)
}

// GetAgentImpl is the implementation of the GetAgent use case
type GetAgentImpl struct {
	registry domain.AgentRegistry
}

// NewGetAgentImpl creates a new instance of GetAgentImpl
func NewGetAgentImpl(registry domain.AgentRegistry) GetAgentImpl {
	return GetAgentImpl{registry: registry}
}

// Query returns the agent with the given id
func (g GetAgentImpl) Query(ctx context.Context, agentID string) (domain.AgentConfig, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	agent, err := g.registry.Get(agentID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AgentConfig{}, err
	}
	return agent, nil
}

// InitGetAgent is the initializer for the GetAgent use case
type InitGetAgent struct {
	Registry domain.AgentRegistry `resolve:""`
}

// Initialize registers the GetAgent use case in the dependency container
func (i InitGetAgent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetAgent](NewGetAgentImpl(i.Registry))
	return ctx, nil
}
