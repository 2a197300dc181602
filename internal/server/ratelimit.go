package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const rateLimitMessage = "Quá nhiều yêu cầu! Vui lòng đợi 1 phút."

// RateLimiter is a fixed-window per-IP limiter for inbound API traffic.
// It is independent of the outbound oracle quota: this protects the HTTP
// surface, the quota guard protects the AI budget.
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*rateWindow
	now     func() time.Time
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter creates a limiter allowing max requests per window per IP.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		entries: make(map[string]*rateWindow),
		now:     time.Now,
	}
}

// WithClock replaces the limiter's time source for tests.
func (rl *RateLimiter) WithClock(now func() time.Time) *RateLimiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.now = now
	return rl
}

// take records one request for key and reports whether it is within the
// limit, plus the remaining allowance and the window reset time.
func (rl *RateLimiter) take(key string) (allowed bool, remaining int, resetAt time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.entries[key]
	if !ok || now.After(w.resetAt) {
		w = &rateWindow{count: 0, resetAt: now.Add(rl.window)}
		rl.entries[key] = w
	}

	w.count++
	if w.count > rl.max {
		return false, 0, w.resetAt
	}
	return true, rl.max - w.count, w.resetAt
}

// Sweep drops expired windows. Call periodically to bound memory.
func (rl *RateLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.entries {
		if now.After(w.resetAt) {
			delete(rl.entries, key)
		}
	}
}

// Middleware enforces the limit and attaches the X-RateLimit-* headers.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetAt := rl.take(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.UnixMilli(), 10))

		if !allowed {
			retryAfter := int(resetAt.Sub(rl.now()).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      rateLimitMessage,
				"retryAfter": retryAfter,
			})
			return
		}
		c.Next()
	}
}
