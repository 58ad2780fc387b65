package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiterStore maps client IPs to token buckets. Entries unseen for
// staleAfter are swept.
type ipLimiterStore struct {
	mu         sync.Mutex
	entries    map[string]*limiterEntry
	limit      rate.Limit
	burst      int
	staleAfter time.Duration
}

func newIPLimiterStore(limit rate.Limit, burst int, staleAfter time.Duration) *ipLimiterStore {
	return &ipLimiterStore{
		entries:    make(map[string]*limiterEntry),
		limit:      limit,
		burst:      burst,
		staleAfter: staleAfter,
	}
}

func (s *ipLimiterStore) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (s *ipLimiterStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.staleAfter)
	for k, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// FormLimiter is a per-IP token bucket for public write endpoints. The
// sweeper goroutine lives as long as the process.
func FormLimiter(limit rate.Limit, burst int) gin.HandlerFunc {
	store := newIPLimiterStore(limit, burst, 10*time.Minute)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			store.sweep(now)
		}
	}()
	return formLimiterHandler(store)
}

// ContactFormLimiter reads CONTACT_RATE_LIMIT_RPS (default one message
// every 30s) and CONTACT_RATE_LIMIT_BURST (default 3).
func ContactFormLimiter() gin.HandlerFunc {
	rps := config.GetEnvFloat("CONTACT_RATE_LIMIT_RPS", 1.0/30)
	burst := config.GetEnvInt("CONTACT_RATE_LIMIT_BURST", 3)
	return FormLimiter(rate.Limit(rps), burst)
}

func formLimiterHandler(store *ipLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if !store.allow(c.ClientIP(), time.Now()) {
			c.Header("Retry-After", "30")
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many messages, please try again shortly"))
			c.Abort()
			return
		}
		c.Next()
	}
}
