package quota

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGuard(maxCalls int, window time.Duration) (*Guard, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	g := New(Config{MaxCalls: maxCalls, Window: window}).WithClock(clock.now)
	return g, clock
}

func TestGuard_AllowsUpToLimit(t *testing.T) {
	g, _ := newTestGuard(10, time.Minute)

	for i := 0; i < 10; i++ {
		if !g.Allow() {
			t.Fatalf("call %d denied, want allowed", i+1)
		}
	}
	if g.Allow() {
		t.Error("11th call allowed, want denied")
	}
}

func TestGuard_WindowSlides(t *testing.T) {
	g, clock := newTestGuard(10, time.Minute)

	for i := 0; i < 10; i++ {
		g.Allow()
	}
	if g.Allow() {
		t.Fatal("call at limit allowed, want denied")
	}

	clock.advance(61 * time.Second)
	if !g.Allow() {
		t.Error("call after window elapsed denied, want allowed")
	}
}

func TestGuard_DenialDoesNotRecord(t *testing.T) {
	g, clock := newTestGuard(2, time.Minute)

	g.Allow()
	g.Allow()

	// Hammer the denied guard; the wait must not grow.
	for i := 0; i < 5; i++ {
		g.Allow()
	}

	clock.advance(61 * time.Second)
	if !g.Allow() {
		t.Error("denied calls extended the window")
	}
}

func TestGuard_Remaining(t *testing.T) {
	g, clock := newTestGuard(3, time.Minute)

	if got := g.Remaining(); got != 3 {
		t.Errorf("Remaining() = %d, want 3", got)
	}
	g.Allow()
	g.Allow()
	if got := g.Remaining(); got != 1 {
		t.Errorf("Remaining() = %d, want 1", got)
	}

	clock.advance(61 * time.Second)
	if got := g.Remaining(); got != 3 {
		t.Errorf("Remaining() after window = %d, want 3", got)
	}
}

func TestGuard_RetryAfter(t *testing.T) {
	g, clock := newTestGuard(1, time.Minute)

	if got := g.RetryAfter(); got != 0 {
		t.Errorf("RetryAfter() with free slot = %v, want 0", got)
	}

	g.Allow()
	if got := g.RetryAfter(); got != time.Minute {
		t.Errorf("RetryAfter() = %v, want 1m", got)
	}

	clock.advance(40 * time.Second)
	if got := g.RetryAfter(); got != 20*time.Second {
		t.Errorf("RetryAfter() = %v, want 20s", got)
	}
}

func TestGuard_ZeroCapacityRetryAfter(t *testing.T) {
	g, _ := newTestGuard(0, time.Minute)

	if g.Allow() {
		t.Fatal("zero-capacity guard allowed a call")
	}
	if got := g.RetryAfter(); got != time.Minute {
		t.Errorf("RetryAfter() = %v, want 1m", got)
	}
}

func TestGuard_IndependentInstances(t *testing.T) {
	a, _ := newTestGuard(1, time.Minute)
	b, _ := newTestGuard(1, time.Minute)

	a.Allow()
	if !b.Allow() {
		t.Error("guard instances share state")
	}
}
