package session

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the conversation identifier for one client lifetime. The id
// is minted once and never replaced; a new process gets a new conversation.
type Session struct {
	id        string
	createdAt time.Time
}

// New mints a fresh conversation identifier.
func New() *Session {
	return &Session{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
	}
}

// ID returns the immutable conversation identifier.
func (s *Session) ID() string {
	return s.id
}

// CreatedAt reports when the session was started.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}
