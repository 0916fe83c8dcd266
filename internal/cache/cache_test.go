// file: internal/cache/cache_test.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7e

package cache

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func withClock[T any](c *Cache[T]) *fakeClock {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c.now = clk.now
	return clk
}

func TestGetSet(t *testing.T) {
	c := New[string](time.Minute, 0)
	c.Set("k", "v")
	v, ok := c.Get("k")
	if !ok || v != "v" {
		t.Fatalf("expected v, got %q ok=%v", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	c := New[int](time.Second, 0)
	clk := withClock(c)
	c.Set("k", 42)
	clk.advance(999 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected entry before ttl")
	}
	clk.advance(time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry")
	}
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	c := New[int](0, 0)
	c.Set("k", 1)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected nothing cached")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", c.Len())
	}
}

func TestBoundEvictsOldest(t *testing.T) {
	c := New[int](time.Hour, 2)
	clk := withClock(c)
	c.Set("a", 1)
	clk.advance(time.Second)
	c.Set("b", 2)
	clk.advance(time.Second)
	c.Set("c", 3)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected oldest entry evicted")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatal("expected newest entry kept")
	}

	// overwriting an existing key never evicts
	c.Set("b", 20)
	if _, ok := c.Get("c"); !ok {
		t.Fatal("expected c to survive overwrite of b")
	}
}

func TestBoundPrefersExpired(t *testing.T) {
	c := New[int](time.Hour, 2)
	clk := withClock(c)
	c.Set("old", 1)
	c.SetWithTTL("short", 2, time.Second)
	clk.advance(2 * time.Second)
	c.Set("new", 3)

	if _, ok := c.Get("old"); !ok {
		t.Fatal("expected live entry kept while an expired one could go")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestInvalidate(t *testing.T) {
	c := New[string](time.Minute, 0)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Invalidate("a")
	_, ok := c.Get("a")
	if ok {
		t.Fatal("expected a to be invalidated")
	}
	v, ok := c.Get("b")
	if !ok || v != "2" {
		t.Fatal("expected b to remain")
	}
}

func TestInvalidateAll(t *testing.T) {
	c := New[int](time.Minute, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	c.InvalidateAll()
	_, ok := c.Get("a")
	if ok {
		t.Fatal("expected all invalidated")
	}
}
