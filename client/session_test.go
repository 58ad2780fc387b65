package client

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession()
	s.now = func() time.Time { return now }

	assert.False(t, s.Valid())
	_, ok := s.Token()
	assert.False(t, ok)

	s.Set("tok", now.Add(time.Hour))
	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	now = now.Add(2 * time.Hour)
	assert.False(t, s.Valid())
	_, ok = s.Token()
	assert.False(t, ok)
}

func TestSessionWithoutExpiryIsTrusted(t *testing.T) {
	s := NewSession()
	s.Set("tok", time.Time{})
	assert.True(t, s.Valid())
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestSessionAdminFlag(t *testing.T) {
	s := NewSession()
	s.SetAdmin(true)
	_, known := s.IsAdmin()
	assert.False(t, known, "no token yet")

	s.Set("tok", time.Now().Add(time.Hour))
	_, known = s.IsAdmin()
	assert.False(t, known, "a new token drops the cached flag")

	s.SetAdmin(true)
	isAdmin, known := s.IsAdmin()
	assert.True(t, known)
	assert.True(t, isAdmin)

	s.Invalidate()
	assert.False(t, s.Valid())
	_, known = s.IsAdmin()
	assert.False(t, known)
}

func TestSessionConcurrentUse(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				s.Set("tok", time.Now().Add(time.Minute))
			case 1:
				s.SetAdmin(true)
				s.IsAdmin()
			default:
				s.Token()
				s.Invalidate()
			}
		}(i)
	}
	wg.Wait()
}
