// Package conversation tracks per-conversation message history on the
// server. Identifiers are minted by the client at page load, so the service
// creates a conversation lazily the first time an id appears.
package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ironcoach/ironcoach/internal/model/coach"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Message is one stored turn with its arrival time.
type Message struct {
	Role      coach.Role
	Content   string
	CreatedAt time.Time
}

// Service is an in-memory conversation log guarded for concurrent handlers.
type Service struct {
	mu       sync.RWMutex
	started  map[string]time.Time
	messages map[string][]Message
}

// NewService bootstraps an empty conversation service.
func NewService() *Service {
	return &Service{
		started:  make(map[string]time.Time),
		messages: make(map[string][]Message),
	}
}

// Append records a turn, creating the conversation on first use.
func (s *Service) Append(_ context.Context, conversationID string, role coach.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.started[conversationID]; !ok {
		s.started[conversationID] = time.Now().UTC()
		s.messages[conversationID] = make([]Message, 0, 16)
	}
	s.messages[conversationID] = append(s.messages[conversationID], Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}

// History returns up to limit most recent messages in chronological order.
// An unknown conversation yields an empty history, not an error: the client
// may legitimately ask its first question with a fresh id.
func (s *Service) History(_ context.Context, conversationID string, limit int) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.messages[conversationID]
	if !ok {
		return nil
	}

	start := 0
	if limit > 0 && len(msgs) > limit {
		start = len(msgs) - limit
	}
	copied := make([]Message, len(msgs)-start)
	copy(copied, msgs[start:])
	return copied
}

// StartedAt reports when a conversation was first seen.
func (s *Service) StartedAt(_ context.Context, conversationID string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at, ok := s.started[conversationID]
	if !ok {
		return time.Time{}, ErrConversationNotFound
	}
	return at, nil
}
