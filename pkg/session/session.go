// Package session provides persistence for moodboard editing sessions.
//
// A session records the state the grid engine cannot derive: the active
// layout preset and the swap ledger entries the user has made. Stores
// exist for different deployments:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI and single-user use
//   - redis: Redis-backed storage for multi-instance server deployments
//
// # Architecture
//
// Sessions expire after a TTL so abandoned boards do not accumulate.
// The Store interface supports:
//   - Get/Set/Delete operations
//   - Automatic expiration checking
//   - Cleanup of expired sessions
//
// Swaps are preset-local: SetActivePreset clears the recorded swaps,
// mirroring the grid engine's ledger semantics.
//
// # Usage
//
// Create a session store:
//
//	// Development
//	store := session.NewMemoryStore()
//
//	// Production
//	store, err := session.NewRedisStore(ctx, session.RedisConfig{
//	    Addr: "localhost:6379",
//	})
//
//	// CLI
//	store, err := session.NewFileStore("")  // Uses ~/.config/moodgrid/sessions/
//
// Manage sessions:
//
//	sess := session.New("editorial", session.DefaultTTL)
//	store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, sessionID)
//	if err != nil {
//	    return err
//	}
//	if sess == nil {
//	    // Session not found or expired
//	}
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// Session stores the persisted half of one editing session.
type Session struct {
	ID           string            `json:"id"`
	ActivePreset string            `json:"active_preset"`
	Swaps        map[string]string `json:"swaps,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SetActivePreset switches the active preset. Swaps are only meaningful
// within one preset's geometry, so switching clears them. Re-setting
// the current preset keeps the swaps.
func (s *Session) SetActivePreset(name string) {
	if name == s.ActivePreset {
		return
	}
	s.ActivePreset = name
	s.Swaps = nil
	s.UpdatedAt = time.Now()
}

// RecordSwaps replaces the persisted swap mapping with a snapshot taken
// from the grid engine's ledger.
func (s *Session) RecordSwaps(swaps map[string]string) {
	if len(swaps) == 0 {
		s.Swaps = nil
	} else {
		s.Swaps = make(map[string]string, len(swaps))
		for k, v := range swaps {
			s.Swaps[k] = v
		}
	}
	s.UpdatedAt = time.Now()
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions (may be a no-op for Redis,
	// which expires keys natively).
	Cleanup(ctx context.Context) error
}

// DefaultTTL is the default session duration.
const DefaultTTL = 30 * 24 * time.Hour

// New creates a session for the given preset with a fresh random ID.
func New(activePreset string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.NewString(),
		ActivePreset: activePreset,
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}
