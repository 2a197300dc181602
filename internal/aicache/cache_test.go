package aicache

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestCache[T any](ttl time.Duration) (*Cache[T], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	return New[T](ttl).WithClock(clock.now), clock
}

func TestCache_HitBeforeTTL(t *testing.T) {
	c, clock := newTestCache[string](10 * time.Minute)

	c.Put("k", "v")
	clock.t = clock.t.Add(9 * time.Minute)

	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Errorf("Get() = (%q, %t), want (\"v\", true)", got, ok)
	}
}

func TestCache_MissAfterTTL(t *testing.T) {
	c, clock := newTestCache[string](10 * time.Minute)

	c.Put("k", "v")
	clock.t = clock.t.Add(10 * time.Minute)

	if _, ok := c.Get("k"); ok {
		t.Error("Get() hit after TTL, want miss")
	}
	// Expired entry is evicted by the failed read.
	if c.Len() != 0 {
		t.Errorf("Len() = %d after lazy eviction, want 0", c.Len())
	}
}

func TestCache_MissUnknownKey(t *testing.T) {
	c, _ := newTestCache[int](time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("Get() hit for unknown key")
	}
}

func TestCache_PutRestartsTTL(t *testing.T) {
	c, clock := newTestCache[int](10 * time.Minute)

	c.Put("k", 1)
	clock.t = clock.t.Add(8 * time.Minute)
	c.Put("k", 2)
	clock.t = clock.t.Add(8 * time.Minute)

	got, ok := c.Get("k")
	if !ok || got != 2 {
		t.Errorf("Get() = (%d, %t), want (2, true)", got, ok)
	}
}

func TestCache_KeysDoNotCollide(t *testing.T) {
	c, _ := newTestCache[string](time.Minute)

	c.Put("topic:tenses|difficulty:easy", "a")
	c.Put("topic:tenses|difficulty:hard", "b")

	if got, _ := c.Get("topic:tenses|difficulty:easy"); got != "a" {
		t.Errorf("easy key = %q, want \"a\"", got)
	}
	if got, _ := c.Get("topic:tenses|difficulty:hard"); got != "b" {
		t.Errorf("hard key = %q, want \"b\"", got)
	}
}

func TestCache_Sweep(t *testing.T) {
	c, clock := newTestCache[int](time.Minute)

	c.Put("old", 1)
	clock.t = clock.t.Add(2 * time.Minute)
	c.Put("fresh", 2)
	c.Sweep()

	if c.Len() != 1 {
		t.Errorf("Len() after sweep = %d, want 1", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("sweep evicted a fresh entry")
	}
}
