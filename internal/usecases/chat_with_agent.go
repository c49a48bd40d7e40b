package usecases

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// MaxChatMessageLength is the maximum number of characters of a user message.
const MaxChatMessageLength = 4000

// ChatTurnInput is the input of a chat turn.
type ChatTurnInput struct {
	SessionID string
	AgentID   string
	Message   string
}

// ChatWithAgent defines the interface for the ChatWithAgent use case
type ChatWithAgent interface {
	Execute(ctx context.Context, input ChatTurnInput) (domain.ChatReply, error)
}

// ChatWithAgentImpl is the implementation of the ChatWithAgent use case
type ChatWithAgentImpl struct {
	registry     domain.AgentRegistry
	historyRepo  domain.ChatHistoryRepository
	generator    GenerateChatReply
	publisher    domain.ChatTurnEventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewChatWithAgentImpl creates a new instance of ChatWithAgentImpl
func NewChatWithAgentImpl(
	registry domain.AgentRegistry,
	historyRepo domain.ChatHistoryRepository,
	generator GenerateChatReply,
	publisher domain.ChatTurnEventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) ChatWithAgentImpl {
	return ChatWithAgentImpl{
		registry:     registry,
		historyRepo:  historyRepo,
		generator:    generator,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute answers the message as the requested agent and records the turn
// in the session history.
func (c ChatWithAgentImpl) Execute(ctx context.Context, input ChatTurnInput) (domain.ChatReply, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(
		telemetry.AttrAgentID.String(input.AgentID),
		telemetry.AttrSessionID.String(input.SessionID),
	)

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return domain.ChatReply{}, domain.NewValidationErr("message cannot be empty")
	}
	if utf8.RuneCountInString(message) > MaxChatMessageLength {
		return domain.ChatReply{}, domain.NewValidationErrf("message cannot exceed %d characters", MaxChatMessageLength)
	}
	if strings.TrimSpace(input.SessionID) == "" {
		return domain.ChatReply{}, domain.NewValidationErr("session id cannot be empty")
	}

	agent, err := c.registry.Get(input.AgentID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatReply{}, err
	}

	key := domain.SessionKey{SessionID: input.SessionID, AgentID: agent.ID}
	stored, err := c.historyRepo.ListMessages(spanCtx, key)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatReply{}, err
	}

	history := make([]domain.ChatMessage, 0, len(stored))
	for _, m := range stored {
		history = append(history, domain.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply := c.generator.Execute(spanCtx, message, history, agent, agent.Tools)

	now := c.timeProvider.Now()
	err = c.historyRepo.AppendMessages(spanCtx, key, []domain.StoredChatMessage{
		{Role: domain.ChatRole_User, Content: message, CreatedAt: now},
		{Role: domain.ChatRole_Assistant, Content: reply.Content, CreatedAt: now},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatReply{}, err
	}

	RecordChatTurn(spanCtx, agent.ID, reply.Outcome)

	event := domain.ChatTurnCompletedEvent{
		ID:          uuid.New(),
		Type:        domain.EventType_ChatTurnCompleted,
		SessionID:   input.SessionID,
		AgentID:     agent.ID,
		Outcome:     reply.Outcome,
		ToolCalls:   reply.ToolCalls,
		Usage:       reply.Usage,
		CompletedAt: now,
	}
	if err := c.publisher.PublishTurnCompleted(spanCtx, event); err != nil {
		c.logger.Printf("ChatWithAgent: failed to publish turn event for session %s: %v", input.SessionID, err)
	}

	return reply, nil
}

// InitChatWithAgent is the initializer for the ChatWithAgent use case
type InitChatWithAgent struct {
	Registry     domain.AgentRegistry          `resolve:""`
	HistoryRepo  domain.ChatHistoryRepository  `resolve:""`
	Generator    GenerateChatReply             `resolve:""`
	Publisher    domain.ChatTurnEventPublisher `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Logger       *log.Logger                   `resolve:""`
}

// Initialize registers the ChatWithAgent use case in the dependency container
func (i InitChatWithAgent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ChatWithAgent](NewChatWithAgentImpl(
		i.Registry,
		i.HistoryRepo,
		i.Generator,
		i.Publisher,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
