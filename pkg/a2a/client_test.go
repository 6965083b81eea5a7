package a2a

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redscout/redscout/pkg/breaker"
)

func testClient() *Client {
	breakers := breaker.NewRegistry(breaker.Config{FailureThreshold: 5, RecoveryTimeout: time.Minute})
	return NewClient("test-key", 5*time.Second, breakers)
}

func TestInvokeSkill_Success(t *testing.T) {
	var gotAuth string
	var gotReq SkillRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/skills/fetch_posts_by_topic", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(SkillResponse{
			Status:    StatusSuccess,
			Result:    map[string]any{"total_posts": float64(2)},
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	client := testClient()
	resp, err := client.InvokeSkill(context.Background(), "retrieval", srv.URL, "fetch_posts_by_topic",
		map[string]any{"topic": "golang"}, RequestContext{CorrelationID: "corr-1"})
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, float64(2), resp.Result["total_posts"])
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "corr-1", gotReq.Context.CorrelationID)
	assert.NotEmpty(t, gotReq.Context.Timestamp)
}

func TestInvokeSkill_ServerErrorIsRetriable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := testClient()
	_, err := client.InvokeSkill(context.Background(), "filter", srv.URL, "batch_filter_posts", nil, RequestContext{})
	require.Error(t, err)

	var invokeErr *InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.True(t, invokeErr.Retriable)
	assert.Equal(t, http.StatusInternalServerError, invokeErr.StatusCode)
}

func TestInvokeSkill_AuthRejectionIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusForbidden)
	}))
	defer srv.Close()

	client := testClient()
	_, err := client.InvokeSkill(context.Background(), "filter", srv.URL, "batch_filter_posts", nil, RequestContext{})
	require.Error(t, err)

	var invokeErr *InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.False(t, invokeErr.Retriable)
	assert.Equal(t, http.StatusForbidden, invokeErr.StatusCode)
}

func TestInvokeSkill_UpstreamErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		retriable bool
	}{
		{"rate limited", "reddit API rate limit exceeded", true},
		{"temporary", "temporary upstream failure", true},
		{"timeout", "request timed out", true},
		{"bad params", "missing required parameter: topic", false},
		{"config", "slack webhook not configured", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(SkillResponse{
					Status:    StatusError,
					Error:     tc.message,
					Timestamp: time.Now().Format(time.RFC3339),
				})
			}))
			defer srv.Close()

			client := testClient()
			_, err := client.InvokeSkill(context.Background(), "retrieval", srv.URL, "fetch_posts_by_topic", nil, RequestContext{})
			require.Error(t, err)

			var invokeErr *InvokeError
			require.ErrorAs(t, err, &invokeErr)
			assert.Equal(t, tc.retriable, invokeErr.Retriable)
		})
	}
}

func TestInvokeSkill_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	breakers := breaker.NewRegistry(breaker.Config{FailureThreshold: 3, RecoveryTimeout: time.Minute})
	client := NewClient("test-key", 5*time.Second, breakers)

	for i := 0; i < 3; i++ {
		_, err := client.InvokeSkill(context.Background(), "summarize", srv.URL, "summarizeContent", nil, RequestContext{})
		require.Error(t, err)
	}
	require.Equal(t, 3, calls)

	_, err := client.InvokeSkill(context.Background(), "summarize", srv.URL, "summarizeContent", nil, RequestContext{})
	require.Error(t, err)

	var invokeErr *InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.True(t, invokeErr.CircuitOpen)
	assert.True(t, invokeErr.Retriable)
	assert.Equal(t, 3, calls, "open breaker must not hit the agent")
}

func TestInvokeSkill_ContextDeadlineOverridesDefaultTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(SkillResponse{
			Status:    StatusSuccess,
			Result:    map[string]any{"summary_text": "long-running summary"},
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	breakers := breaker.NewRegistry(breaker.Config{FailureThreshold: 5, RecoveryTimeout: time.Minute})
	client := NewClient("test-key", 50*time.Millisecond, breakers)

	// A stage budget above the client default must be usable.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.InvokeSkill(ctx, "summarize", srv.URL, "summarizeContent", nil, RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, resp.Status)
}

func TestInvokeSkill_DefaultTimeoutBackstopsDeadlineFreeCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	breakers := breaker.NewRegistry(breaker.Config{FailureThreshold: 5, RecoveryTimeout: time.Minute})
	client := NewClient("test-key", 50*time.Millisecond, breakers)

	_, err := client.InvokeSkill(context.Background(), "summarize", srv.URL, "summarizeContent", nil, RequestContext{})
	require.Error(t, err)

	var invokeErr *InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.True(t, invokeErr.Retriable)
}

func TestInvokeSkill_SkippedStatusPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SkillResponse{
			Status:    StatusSkipped,
			Result:    map[string]any{"reason": "duplicate_batch"},
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	client := testClient()
	resp, err := client.InvokeSkill(context.Background(), "alert", srv.URL, "sendBatch", nil, RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, resp.Status)
}
