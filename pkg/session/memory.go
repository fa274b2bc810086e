package session

import (
	"context"
	"sync"
	"time"

	"github.com/brandsmith/moodgrid/pkg/observability"
)

// MemoryStore is an in-memory session store for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		observability.Session().OnLoad(ctx, sessionID, false)
		return nil, nil
	}
	if sess.IsExpired() {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		observability.Session().OnLoad(ctx, sessionID, false)
		return nil, nil
	}

	observability.Session().OnLoad(ctx, sessionID, true)
	cp := *sess
	return &cp, nil
}

func (s *MemoryStore) Set(ctx context.Context, sess *Session) error {
	cp := *sess
	s.mu.Lock()
	s.sessions[sess.ID] = &cp
	s.mu.Unlock()
	observability.Session().OnSave(ctx, sess.ID)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Cleanup(ctx context.Context) error {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

var _ Store = (*MemoryStore)(nil)
