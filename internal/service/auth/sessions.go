package authservice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     string    `json:"token"`
	UserId    int       `json:"-"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// sessionStore keeps login sessions in process memory. Expired sessions are
// dropped on lookup.
type sessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

func (s *sessionStore) create(userId int, username, role string) Session {
	session := Session{
		Token:     uuid.NewString(),
		UserId:    userId,
		Username:  username,
		Role:      role,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

func (s *sessionStore) get(token string) (Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		s.delete(token)
		return Session{}, false
	}
	return session, true
}

func (s *sessionStore) delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
