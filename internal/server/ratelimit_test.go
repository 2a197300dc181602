package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	api.Use(rl.Middleware())
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/healthcheck", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return router
}

func doRequest(router *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsUpToMaxThenRejects(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	router := newLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := doRequest(router, "/api/ping", "10.0.0.1")
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
		wantRemaining := strconv.Itoa(3 - i - 1)
		if got := w.Header().Get("X-RateLimit-Remaining"); got != wantRemaining {
			t.Errorf("request %d X-RateLimit-Remaining = %q, want %q", i+1, got, wantRemaining)
		}
	}

	w := doRequest(router, "/api/ping", "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("4th request status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 response missing Retry-After header")
	}
	if got := w.Header().Get("X-RateLimit-Limit"); got != "3" {
		t.Errorf("X-RateLimit-Limit = %q, want \"3\"", got)
	}
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	router := newLimitedRouter(rl)

	if w := doRequest(router, "/api/ping", "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("first IP status = %d, want 200", w.Code)
	}
	if w := doRequest(router, "/api/ping", "10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("second IP status = %d, want 200 (limits are per IP)", w.Code)
	}
	if w := doRequest(router, "/api/ping", "10.0.0.1"); w.Code != http.StatusTooManyRequests {
		t.Errorf("first IP second request status = %d, want 429", w.Code)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute).WithClock(func() time.Time { return now })
	router := newLimitedRouter(rl)

	if w := doRequest(router, "/api/ping", "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}
	if w := doRequest(router, "/api/ping", "10.0.0.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}

	now = now.Add(61 * time.Second)
	if w := doRequest(router, "/api/ping", "10.0.0.1"); w.Code != http.StatusOK {
		t.Errorf("post-window request status = %d, want 200", w.Code)
	}
}

func TestRateLimiter_SkipsNonAPIRoutes(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	router := newLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		if w := doRequest(router, "/healthcheck", "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("healthcheck %d status = %d, want 200", i+1, w.Code)
		}
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute).WithClock(func() time.Time { return now })

	rl.take("10.0.0.1")
	rl.take("10.0.0.2")
	if len(rl.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(rl.entries))
	}

	now = now.Add(2 * time.Minute)
	rl.Sweep()
	if len(rl.entries) != 0 {
		t.Errorf("entries after sweep = %d, want 0", len(rl.entries))
	}
}
