package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestListAgentsImpl_Query(t *testing.T) {
	shop := domain.AgentConfig{ID: "ecommerce", Name: "ShopBot"}

	tests := map[string]struct {
		setupMocks     func(*domain.MockAgentRegistry)
		expectedAgents []domain.AgentConfig
		expectedErr    error
	}{
		"agents-in-registry-order": {
			setupMocks: func(registry *domain.MockAgentRegistry) {
				registry.EXPECT().IDs().Return([]string{"ecommerce", "stock"}).Once()
				registry.EXPECT().Get("ecommerce").Return(shop, nil).Once()
				registry.EXPECT().Get("stock").Return(stockAgent, nil).Once()
			},
			expectedAgents: []domain.AgentConfig{shop, stockAgent},
		},
		"empty-registry": {
			setupMocks: func(registry *domain.MockAgentRegistry) {
				registry.EXPECT().IDs().Return(nil).Once()
			},
			expectedAgents: []domain.AgentConfig{},
		},
		"inconsistent-registry": {
			setupMocks: func(registry *domain.MockAgentRegistry) {
				registry.EXPECT().IDs().Return([]string{"ghost"}).Once()
				registry.EXPECT().Get("ghost").Return(domain.AgentConfig{}, domain.NewNotFoundErr("agent 'ghost' not found")).Once()
			},
			expectedErr: domain.NewNotFoundErr("agent 'ghost' not found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			registry := domain.NewMockAgentRegistry(t)
			tt.setupMocks(registry)

			got, err := NewListAgentsImpl(registry).Query(context.Background())
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedAgents, got)
		})
	}
}
