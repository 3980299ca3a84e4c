package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	now := time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(3)
	l.now = func() time.Time { return now }

	for range 3 {
		assert.True(t, l.Allow("203.0.113.7"))
	}
	assert.False(t, l.Allow("203.0.113.7"))
	assert.True(t, l.Allow("198.51.100.1"), "buckets are per ip")

	now = now.Add(20 * time.Second)
	assert.True(t, l.Allow("203.0.113.7"), "one token refills every 20s")
}

func TestIPRateLimiter_Prune(t *testing.T) {
	now := time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(60)
	l.now = func() time.Time { return now }

	l.Allow("203.0.113.7")
	now = now.Add(30 * time.Minute)
	l.Allow("198.51.100.1")
	now = now.Add(31 * time.Minute)

	assert.Equal(t, 1, l.Prune(time.Hour))
	assert.Equal(t, 1, l.Len())
}
