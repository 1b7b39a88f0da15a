// Package session is an explicit token-to-user store with TTL, injected into
// the server instead of ambient process state. Sessions are created on login,
// resolved on every request, and invalidated on logout or expiry.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 24 * time.Hour

type entry struct {
	userID    string
	expiresAt time.Time
}

type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]entry
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{ttl: ttl, sessions: map[string]entry{}}
}

// Create issues a new token for the user.
func (s *Store) Create(userID string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = entry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Resolve returns the user for a token. Expired sessions are removed lazily.
func (s *Store) Resolve(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, token)
		return "", false
	}
	return e.userID, true
}

// Invalidate removes a token.
func (s *Store) Invalidate(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep drops all expired sessions. Safe to run opportunistically.
func (s *Store) Sweep() {
	now := time.Now()
	s.mu.Lock()
	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
}
