package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChatWithAgentImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	key := domain.SessionKey{SessionID: "session-1", AgentID: "stock"}
	reply := domain.ChatReply{
		Content:   "AAPL is trading at $185.50.",
		Outcome:   domain.ChatOutcome_ToolAssisted,
		ToolCalls: []domain.ToolInvocation{{ID: "call_1", Name: "get_stock_price"}},
		Usage:     domain.LLMUsage{TotalTokens: 152},
	}

	type mocks struct {
		registry     *domain.MockAgentRegistry
		historyRepo  *domain.MockChatHistoryRepository
		generator    *MockGenerateChatReply
		publisher    *domain.MockChatTurnEventPublisher
		timeProvider *domain.MockCurrentTimeProvider
	}

	tests := map[string]struct {
		input         ChatTurnInput
		setupMocks    func(m mocks)
		expectedReply domain.ChatReply
		expectedErr   error
	}{
		"success": {
			input: ChatTurnInput{SessionID: "session-1", AgentID: "stock", Message: "  price of AAPL  "},
			setupMocks: func(m mocks) {
				m.registry.EXPECT().Get("stock").Return(stockAgent, nil).Once()
				m.historyRepo.EXPECT().
					ListMessages(mock.Anything, key).
					Return([]domain.StoredChatMessage{
						{Role: domain.ChatRole_User, Content: "hi", CreatedAt: fixedTime},
						{Role: domain.ChatRole_Assistant, Content: "hello", CreatedAt: fixedTime},
					}, nil).
					Once()
				m.generator.EXPECT().
					Execute(mock.Anything, "price of AAPL", []domain.ChatMessage{
						{Role: domain.ChatRole_User, Content: "hi"},
						{Role: domain.ChatRole_Assistant, Content: "hello"},
					}, stockAgent, stockAgent.Tools).
					Return(reply).
					Once()
				m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
				m.historyRepo.EXPECT().
					AppendMessages(mock.Anything, key, []domain.StoredChatMessage{
						{Role: domain.ChatRole_User, Content: "price of AAPL", CreatedAt: fixedTime},
						{Role: domain.ChatRole_Assistant, Content: reply.Content, CreatedAt: fixedTime},
					}).
					Return(nil).
					Once()
				m.publisher.EXPECT().
					PublishTurnCompleted(mock.Anything, mock.MatchedBy(func(e domain.ChatTurnCompletedEvent) bool {
						return e.Type == domain.EventType_ChatTurnCompleted &&
							e.SessionID == "session-1" &&
							e.AgentID == "stock" &&
							e.Outcome == domain.ChatOutcome_ToolAssisted &&
							e.Usage.TotalTokens == 152 &&
							e.CompletedAt.Equal(fixedTime)
					})).
					Return(nil).
					Once()
			},
			expectedReply: reply,
		},
		"publish-failure-does-not-fail-the-turn": {
			input: ChatTurnInput{SessionID: "session-1", AgentID: "stock", Message: "hello"},
			setupMocks: func(m mocks) {
				m.registry.EXPECT().Get("stock").Return(stockAgent, nil).Once()
				m.historyRepo.EXPECT().ListMessages(mock.Anything, key).Return(nil, nil).Once()
				m.generator.EXPECT().
					Execute(mock.Anything, "hello", []domain.ChatMessage{}, stockAgent, stockAgent.Tools).
					Return(domain.ChatReply{Content: "Hi", Outcome: domain.ChatOutcome_Answered}).
					Once()
				m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
				m.historyRepo.EXPECT().AppendMessages(mock.Anything, key, mock.Anything).Return(nil).Once()
				m.publisher.EXPECT().
					PublishTurnCompleted(mock.Anything, mock.Anything).
					Return(errors.New("pubsub unavailable")).
					Once()
			},
			expectedReply: domain.ChatReply{Content: "Hi", Outcome: domain.ChatOutcome_Answered},
		},
		"failed-reply-is-still-recorded": {
			input: ChatTurnInput{SessionID: "session-1", AgentID: "stock", Message: "hello"},
			setupMocks: func(m mocks) {
				m.registry.EXPECT().Get("stock").Return(stockAgent, nil).Once()
				m.historyRepo.EXPECT().ListMessages(mock.Anything, key).Return(nil, nil).Once()
				m.generator.EXPECT().
					Execute(mock.Anything, "hello", mock.Anything, stockAgent, mock.Anything).
					Return(domain.ChatReply{Content: replies.SetupRequired, Outcome: domain.ChatOutcome_SetupRequired}).
					Once()
				m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
				m.historyRepo.EXPECT().AppendMessages(mock.Anything, key, mock.Anything).Return(nil).Once()
				m.publisher.EXPECT().PublishTurnCompleted(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedReply: domain.ChatReply{Content: replies.SetupRequired, Outcome: domain.ChatOutcome_SetupRequired},
		},
		"empty-message": {
			input:       ChatTurnInput{SessionID: "session-1", AgentID: "stock", Message: "   "},
			setupMocks:  func(m mocks) {},
			expectedErr: domain.NewValidationErr("message cannot be empty"),
		},
		"message-too-long": {
			input:       ChatTurnInput{SessionID: "session-1", AgentID: "stock", Message: strings.Repeat("é", MaxChatMessageLength+1)},
			setupMocks:  func(m mocks) {},
			expectedErr: domain.NewValidationErr("message cannot exceed 4000 characters"),
		},
		"missing-session": {
			input:       ChatTurnInput{AgentID: "stock", Message: "hello"},
			setupMocks:  func(m mocks) {},
			expectedErr: domain.NewValidationErr("session id cannot be empty"),
		},
		"unknown-agent": {
			input: ChatTurnInput{SessionID: "session-1", AgentID: "travel", Message: "hello"},
			setupMocks: func(m mocks) {
				m.registry.EXPECT().
					Get("travel").
					Return(domain.AgentConfig{}, domain.NewNotFoundErr("agent 'travel' not found")).
					Once()
			},
			expectedErr: domain.NewNotFoundErr("agent 'travel' not found"),
		},
		"history-error": {
			input: ChatTurnInput{SessionID: "session-1", AgentID: "stock", Message: "hello"},
			setupMocks: func(m mocks) {
				m.registry.EXPECT().Get("stock").Return(stockAgent, nil).Once()
				m.historyRepo.EXPECT().ListMessages(mock.Anything, key).Return(nil, errors.New("store closed")).Once()
			},
			expectedErr: errors.New("store closed"),
		},
		"append-error": {
			input: ChatTurnInput{SessionID: "session-1", AgentID: "stock", Message: "hello"},
			setupMocks: func(m mocks) {
				m.registry.EXPECT().Get("stock").Return(stockAgent, nil).Once()
				m.historyRepo.EXPECT().ListMessages(mock.Anything, key).Return(nil, nil).Once()
				m.generator.EXPECT().
					Execute(mock.Anything, "hello", mock.Anything, stockAgent, mock.Anything).
					Return(domain.ChatReply{Content: "Hi", Outcome: domain.ChatOutcome_Answered}).
					Once()
				m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
				m.historyRepo.EXPECT().AppendMessages(mock.Anything, key, mock.Anything).Return(errors.New("store closed")).Once()
			},
			expectedErr: errors.New("store closed"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := mocks{
				registry:     domain.NewMockAgentRegistry(t),
				historyRepo:  domain.NewMockChatHistoryRepository(t),
				generator:    NewMockGenerateChatReply(t),
				publisher:    domain.NewMockChatTurnEventPublisher(t),
				timeProvider: domain.NewMockCurrentTimeProvider(t),
			}
			tt.setupMocks(m)

			uc := NewChatWithAgentImpl(m.registry, m.historyRepo, m.generator, m.publisher, m.timeProvider, log.New(io.Discard, "", 0))
			got, err := uc.Execute(context.Background(), tt.input)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedReply, got)
		})
	}
}
