// Package quota implements the sliding-window call budget that gates every
// outbound AI request. The guard models the process-wide API budget, not
// per-user fairness: all generation call sites share one instance.
package quota

import (
	"sync"
	"time"
)

// Guard is a sliding-window rate limiter. At most MaxCalls calls are allowed
// within any rolling Window. Denied calls are not recorded, so a burst of
// rejections never extends the wait.
type Guard struct {
	mu       sync.Mutex
	maxCalls int
	window   time.Duration
	calls    []time.Time
	now      func() time.Time
}

// Config holds guard settings.
type Config struct {
	MaxCalls int
	Window   time.Duration
}

// DefaultConfig returns the default oracle budget: 10 calls per minute.
func DefaultConfig() Config {
	return Config{
		MaxCalls: 10,
		Window:   time.Minute,
	}
}

// New creates a Guard with the given config.
func New(cfg Config) *Guard {
	return &Guard{
		maxCalls: cfg.MaxCalls,
		window:   cfg.Window,
		now:      time.Now,
	}
}

// WithClock replaces the guard's time source. Tests use this to simulate
// the passage of time without sleeping.
func (g *Guard) WithClock(now func() time.Time) *Guard {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = now
	return g
}

// Allow reports whether a call may proceed now. On success the call is
// recorded against the window. On denial nothing is recorded; callers must
// fail fast or fall back — the guard never blocks.
func (g *Guard) Allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.trim(g.now())
	if len(g.calls) >= g.maxCalls {
		return false
	}
	g.calls = append(g.calls, g.now())
	return true
}

// Remaining returns how many calls are still available in the current window.
func (g *Guard) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.trim(g.now())
	return g.maxCalls - len(g.calls)
}

// RetryAfter returns how long until the next slot frees up.
// Returns 0 if a call would be allowed right now.
func (g *Guard) RetryAfter() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.trim(now)
	if len(g.calls) < g.maxCalls {
		return 0
	}
	// A zero-capacity guard denies with nothing recorded; the full window
	// is the honest wait.
	if len(g.calls) == 0 {
		return g.window
	}
	// The oldest recorded call is the next to expire.
	return g.calls[0].Add(g.window).Sub(now)
}

// trim drops recorded timestamps older than now-window.
// Callers must hold g.mu.
func (g *Guard) trim(now time.Time) {
	cutoff := now.Add(-g.window)
	i := 0
	for i < len(g.calls) && !g.calls[i].After(cutoff) {
		i++
	}
	if i > 0 {
		g.calls = append(g.calls[:0], g.calls[i:]...)
	}
}
