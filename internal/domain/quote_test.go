package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_Change(t *testing.T) {
	tests := map[string]struct {
		quote          Quote
		expectedChange float64
		expectedPct    float64
	}{
		"price-up": {
			quote:          Quote{Price: 110, PreviousClose: 100},
			expectedChange: 10,
			expectedPct:    10,
		},
		"price-down": {
			quote:          Quote{Price: 90, PreviousClose: 100},
			expectedChange: -10,
			expectedPct:    -10,
		},
		"no-previous-close": {
			quote:          Quote{Price: 90},
			expectedChange: 90,
			expectedPct:    0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedChange, tt.quote.Change(), 0.0001)
			assert.InDelta(t, tt.expectedPct, tt.quote.ChangePercent(), 0.0001)
		})
	}
}

func TestLLMUsage_Add(t *testing.T) {
	u := LLMUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	got := u.Add(LLMUsage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5})
	assert.Equal(t, LLMUsage{PromptTokens: 13, CompletionTokens: 7, TotalTokens: 20}, got)
}

func TestChatOutcome_Failed(t *testing.T) {
	assert.False(t, ChatOutcome_Answered.Failed())
	assert.False(t, ChatOutcome_ToolAssisted.Failed())
	assert.True(t, ChatOutcome_SetupRequired.Failed())
	assert.True(t, ChatOutcome_RateLimited.Failed())
}
