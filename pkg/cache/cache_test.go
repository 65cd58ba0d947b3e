package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within ttl",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("states", []byte("1"))
				v, ok := c.Get("states")
				assert.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "expired entry is dropped on read",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("states", []byte("1"))
				clock.Advance(time.Minute + time.Second)
				_, ok := c.Get("states")
				assert.False(t, ok)
				assert.Zero(t, c.Len())
			},
		},
		{
			name:     "least recently used is evicted",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b was the least recently used")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
			},
		},
		{
			name:     "overwrite refreshes ttl",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(40 * time.Second)
				c.Set("a", []byte("2"))
				clock.Advance(40 * time.Second)

				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "evictExpired sweeps only stale entries",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("old", []byte("1"))
				clock.Advance(50 * time.Second)
				c.Set("fresh", []byte("2"))
				clock.Advance(20 * time.Second)

				c.evictExpired()

				assert.Equal(t, 1, c.Len())
				_, ok := c.Get("fresh")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, tt.ttl, withClock(clock.Now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_StartStopsWithContext(t *testing.T) {
	c := NewLRUCache(1, time.Millisecond, WithJanitorInterval(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())

	assert.NoError(t, c.Start(ctx))
	c.Set("a", []byte("1"))

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
}
