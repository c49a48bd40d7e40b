package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGetAgentImpl_Query(t *testing.T) {
	tests := map[string]struct {
		agentID       string
		setupMocks    func(*domain.MockAgentRegistry)
		expectedAgent domain.AgentConfig
		expectedErr   error
	}{
		"found": {
			agentID: "stock",
			setupMocks: func(registry *domain.MockAgentRegistry) {
				registry.EXPECT().Get("stock").Return(stockAgent, nil).Once()
			},
			expectedAgent: stockAgent,
		},
		"not-found": {
			agentID: "ghost",
			setupMocks: func(registry *domain.MockAgentRegistry) {
				registry.EXPECT().Get("ghost").Return(domain.AgentConfig{}, domain.NewNotFoundErr("agent 'ghost' not found")).Once()
			},
			expectedErr: domain.NewNotFoundErr("agent 'ghost' not found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			registry := domain.NewMockAgentRegistry(t)
			tt.setupMocks(registry)

			got, err := NewGetAgentImpl(registry).Query(context.Background(), tt.agentID)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedAgent, got)
		})
	}
}
