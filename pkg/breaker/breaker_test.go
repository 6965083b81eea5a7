package breaker

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func testRegistry(recovery time.Duration) *Registry {
	return NewRegistry(Config{FailureThreshold: 3, RecoveryTimeout: recovery})
}

func TestCall_PassesThroughWhileClosed(t *testing.T) {
	reg := testRegistry(time.Minute)

	result, err := reg.Call("retrieval:/skills/fetch_posts_by_topic", func() (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestCall_OpensAfterThreshold(t *testing.T) {
	reg := testRegistry(time.Minute)
	key := "filter:/skills/batch_filter_posts"

	for i := 0; i < 3; i++ {
		_, err := reg.Call(key, func() (any, error) { return nil, errBoom })
		require.ErrorIs(t, err, errBoom)
	}

	// Fourth call fails fast without invoking fn.
	invoked := false
	_, err := reg.Call(key, func() (any, error) {
		invoked = true
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, invoked)

	status := reg.Status()
	assert.Equal(t, "open", status[key].State)
}

func TestCall_HalfOpenProbeClosesOnSuccess(t *testing.T) {
	reg := testRegistry(50 * time.Millisecond)
	key := "summarize:/skills/summarizeContent"

	for i := 0; i < 3; i++ {
		_, _ = reg.Call(key, func() (any, error) { return nil, errBoom })
	}
	_, err := reg.Call(key, func() (any, error) { return nil, nil })
	require.ErrorIs(t, err, ErrCircuitOpen)

	time.Sleep(60 * time.Millisecond)

	// Half-open probe succeeds and the breaker closes again.
	result, err := reg.Call(key, func() (any, error) { return "recovered", nil })
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)

	result, err = reg.Call(key, func() (any, error) { return "still up", nil })
	require.NoError(t, err)
	assert.Equal(t, "still up", result)
}

func TestCall_HalfOpenProbeFailureReopens(t *testing.T) {
	reg := testRegistry(50 * time.Millisecond)
	key := "alert:/skills/sendBatch"

	for i := 0; i < 3; i++ {
		_, _ = reg.Call(key, func() (any, error) { return nil, errBoom })
	}
	time.Sleep(60 * time.Millisecond)

	_, err := reg.Call(key, func() (any, error) { return nil, errBoom })
	require.ErrorIs(t, err, errBoom)

	_, err = reg.Call(key, func() (any, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestBreakers_AreIndependentPerKey(t *testing.T) {
	reg := testRegistry(time.Minute)

	for i := 0; i < 3; i++ {
		_, _ = reg.Call("retrieval:x", func() (any, error) { return nil, errBoom })
	}
	_, err := reg.Call("retrieval:x", func() (any, error) { return nil, nil })
	require.ErrorIs(t, err, ErrCircuitOpen)

	result, err := reg.Call("filter:y", func() (any, error) { return "fine", nil })
	require.NoError(t, err)
	assert.Equal(t, "fine", result)
}

func TestResetAll(t *testing.T) {
	reg := testRegistry(time.Minute)
	key := "retrieval:x"

	for i := 0; i < 3; i++ {
		_, _ = reg.Call(key, func() (any, error) { return nil, errBoom })
	}
	_, err := reg.Call(key, func() (any, error) { return nil, nil })
	require.ErrorIs(t, err, ErrCircuitOpen)

	reg.ResetAll()

	result, err := reg.Call(key, func() (any, error) { return "back", nil })
	require.NoError(t, err)
	assert.Equal(t, "back", result)
}

func TestIsFailureStatus(t *testing.T) {
	tests := []struct {
		code    int
		failure bool
	}{
		{http.StatusOK, false},
		{http.StatusCreated, false},
		{http.StatusBadRequest, false},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusNotFound, false},
		{http.StatusRequestTimeout, true},
		{http.StatusTooEarly, true},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.failure, IsFailureStatus(tc.code), "status %d", tc.code)
	}
}
