package client

import (
	"sync"
	"time"
)

// Session holds the back-office credentials of one client. It is safe for
// concurrent use and is never shared implicitly: callers construct it and
// hand it to every Client that should act as the same admin.
type Session struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	admin     *bool
	now       func() time.Time
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

// Set stores a fresh token. The cached admin flag is dropped because it
// belonged to the previous token.
func (s *Session) Set(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiresAt = expiresAt
	s.admin = nil
}

// Token returns the token while it is still valid.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.validLocked() {
		return "", false
	}
	return s.token, true
}

// Valid reports whether the session holds an unexpired token. A zero
// expiry means the server did not say, and the token is trusted until a 401.
func (s *Session) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validLocked()
}

func (s *Session) validLocked() bool {
	if s.token == "" {
		return false
	}
	return s.expiresAt.IsZero() || s.now().Before(s.expiresAt)
}

// ExpiresAt is the zero time when unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// IsAdmin returns the cached admin flag. known is false until the flag was
// set for the current token, and always false on an invalid session.
func (s *Session) IsAdmin() (isAdmin, known bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil || !s.validLocked() {
		return false, false
	}
	return *s.admin, true
}

func (s *Session) SetAdmin(isAdmin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = &isAdmin
}

// Invalidate forgets the token and everything cached with it.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
	s.admin = nil
}
