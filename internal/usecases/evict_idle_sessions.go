package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// EvictIdleSessions defines the interface for the EvictIdleSessions use case
type EvictIdleSessions interface {
	// Execute removes idle sessions and returns how many were removed.
	Execute(ctx context.Context) (int, error)
}

// EvictIdleSessionsImpl is the implementation of the EvictIdleSessions use case
type EvictIdleSessionsImpl struct {
	historyRepo  domain.ChatHistoryRepository
	timeProvider domain.CurrentTimeProvider
	idleTTL      time.Duration
}

// NewEvictIdleSessionsImpl creates a new instance of EvictIdleSessionsImpl
func NewEvictIdleSessionsImpl(historyRepo domain.ChatHistoryRepository, timeProvider domain.CurrentTimeProvider, idleTTL time.Duration) EvictIdleSessionsImpl {
	return EvictIdleSessionsImpl{
		historyRepo:  historyRepo,
		timeProvider: timeProvider,
		idleTTL:      idleTTL,
	}
}

// Execute removes the sessions without activity for longer than the idle TTL
func (e EvictIdleSessionsImpl) Execute(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	before := e.timeProvider.Now().Add(-e.idleTTL)
	evicted, err := e.historyRepo.EvictIdle(spanCtx, before)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return evicted, nil
}

// InitEvictIdleSessions is the initializer for the EvictIdleSessions use case
type InitEvictIdleSessions struct {
	HistoryRepo  domain.ChatHistoryRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider   `resolve:""`
	IdleTTL      time.Duration                `config:"SESSION_IDLE_TTL" default:"30m"`
}

// Initialize registers the EvictIdleSessions use case in the dependency container
func (i InitEvictIdleSessions) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EvictIdleSessions](NewEvictIdleSessionsImpl(i.HistoryRepo, i.TimeProvider, i.IdleTTL))
	return ctx, nil
}
