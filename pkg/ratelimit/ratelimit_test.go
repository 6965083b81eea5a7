package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIP = "203.0.113.7"

func testLimiter(t *testing.T) (*Limiter, *time.Time) {
	t.Helper()
	limiter, err := New(Config{
		BurstLimit:        3,
		RequestsPerMinute: 5,
		RequestsPerHour:   8,
		WhitelistCIDRs:    []string{"127.0.0.0/8", "10.0.0.0/8"},
	})
	require.NoError(t, err)

	clock := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }
	return limiter, &clock
}

func TestAllow_BurstWindow(t *testing.T) {
	limiter, _ := testLimiter(t)

	for i := 0; i < 3; i++ {
		d := limiter.Allow(testIP)
		assert.True(t, d.Allowed, "request %d", i)
	}

	d := limiter.Allow(testIP)
	assert.False(t, d.Allowed)
	assert.Equal(t, "burst", d.Window)
	assert.Equal(t, 3, d.Limit)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, 10*time.Second, d.RetryAfter)
}

func TestAllow_BurstWindowSlides(t *testing.T) {
	limiter, clock := testLimiter(t)

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow(testIP).Allowed)
	}
	require.False(t, limiter.Allow(testIP).Allowed)

	*clock = clock.Add(11 * time.Second)
	assert.True(t, limiter.Allow(testIP).Allowed)
}

func TestAllow_MinuteWindow(t *testing.T) {
	limiter, clock := testLimiter(t)

	// Stay under the burst limit while exhausting the minute limit.
	for i := 0; i < 5; i++ {
		require.True(t, limiter.Allow(testIP).Allowed)
		*clock = clock.Add(11 * time.Second)
	}

	d := limiter.Allow(testIP)
	assert.False(t, d.Allowed)
	assert.Equal(t, "minute", d.Window)
	assert.Positive(t, d.RetryAfter)
}

func TestAllow_HourWindow(t *testing.T) {
	limiter, clock := testLimiter(t)

	// Spread requests so neither burst nor minute window trips.
	for i := 0; i < 8; i++ {
		require.True(t, limiter.Allow(testIP).Allowed)
		*clock = clock.Add(2 * time.Minute)
	}

	d := limiter.Allow(testIP)
	assert.False(t, d.Allowed)
	assert.Equal(t, "hour", d.Window)
}

func TestAllow_WhitelistBypassesAllWindows(t *testing.T) {
	limiter, _ := testLimiter(t)

	for i := 0; i < 50; i++ {
		assert.True(t, limiter.Allow("127.0.0.1").Allowed)
		assert.True(t, limiter.Allow("10.42.0.3").Allowed)
	}
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter, _ := testLimiter(t)

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow(testIP).Allowed)
	}
	require.False(t, limiter.Allow(testIP).Allowed)

	assert.True(t, limiter.Allow("198.51.100.9").Allowed)
}

func TestNew_RejectsMalformedCIDR(t *testing.T) {
	_, err := New(Config{WhitelistCIDRs: []string{"not-a-cidr"}})
	assert.Error(t, err)
}

func TestAllow_UnparseableIPIsLimited(t *testing.T) {
	limiter, _ := testLimiter(t)

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow("garbage").Allowed)
	}
	assert.False(t, limiter.Allow("garbage").Allowed)
}
