package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

type session struct {
	messages     []domain.StoredChatMessage
	lastActivity time.Time
}

// ChatHistoryRepository is a process-local domain.ChatHistoryRepository.
type ChatHistoryRepository struct {
	mu           sync.RWMutex
	sessions     map[domain.SessionKey]*session
	timeProvider domain.CurrentTimeProvider
}

// NewChatHistoryRepository creates an empty ChatHistoryRepository.
func NewChatHistoryRepository(timeProvider domain.CurrentTimeProvider) *ChatHistoryRepository {
	return &ChatHistoryRepository{
		sessions:     make(map[domain.SessionKey]*session),
		timeProvider: timeProvider,
	}
}

// ListMessages returns a copy of the session messages in insertion order.
func (r *ChatHistoryRepository) ListMessages(ctx context.Context, key domain.SessionKey) ([]domain.StoredChatMessage, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[key]
	if !ok {
		return []domain.StoredChatMessage{}, nil
	}
	return slices.Clone(s.messages), nil
}

// AppendMessages appends the messages and refreshes the session activity time.
func (r *ChatHistoryRepository) AppendMessages(ctx context.Context, key domain.SessionKey, messages []domain.StoredChatMessage) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	now := r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		s = &session{}
		r.sessions[key] = s
	}
	s.messages = append(s.messages, messages...)
	s.lastActivity = now
	return nil
}

// DeleteSession removes the session. Unknown sessions are ignored.
func (r *ChatHistoryRepository) DeleteSession(ctx context.Context, key domain.SessionKey) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, key)
	return nil
}

// EvictIdle removes sessions whose last activity is before the given time.
func (r *ChatHistoryRepository) EvictIdle(ctx context.Context, before time.Time) (int, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for key, s := range r.sessions {
		if s.lastActivity.Before(before) {
			delete(r.sessions, key)
			evicted++
		}
	}
	return evicted, nil
}

// InitChatHistoryRepository registers the in-memory ChatHistoryRepository.
type InitChatHistoryRepository struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the ChatHistoryRepository in the dependency container.
func (i InitChatHistoryRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatHistoryRepository](NewChatHistoryRepository(i.TimeProvider))
	return ctx, nil
}
