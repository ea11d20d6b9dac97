package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia/academy-backend/internal/response"
)

// RateLimiter is a fixed-window per-IP request limiter. Token issuance is
// the only unauthenticated write-ish endpoint, so it gets a cheap guard.
type RateLimiter struct {
	mu       sync.Mutex
	counts   map[string]*window
	limit    int
	interval time.Duration
}

type window struct {
	n     int
	start time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit requests per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		counts:   make(map[string]*window),
		limit:    limit,
		interval: interval,
	}

	go func() {
		for range time.Tick(interval) {
			rl.sweep()
		}
	}()

	return rl
}

// Middleware returns a Gin middleware that rate-limits requests by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rl.mu.Lock()
		w, ok := rl.counts[ip]
		if !ok || now.Sub(w.start) >= rl.interval {
			w = &window{start: now}
			rl.counts[ip] = w
		}
		w.n++
		over := w.n > rl.limit
		rl.mu.Unlock()

		if over {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := time.Now().Add(-2 * rl.interval)
	for ip, w := range rl.counts {
		if w.start.Before(cutoff) {
			delete(rl.counts, ip)
		}
	}
}
