package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/registry"
	"github.com/redscout/redscout/test/util"
)

const (
	testAPIKey    = "test-api-key"
	testJWTSecret = "test-jwt-secret"
)

type fakeAgent struct {
	agentType config.AgentType
	skills    map[string]SkillHandler
}

func (a *fakeAgent) Type() config.AgentType { return a.agentType }

func (a *fakeAgent) Card(baseURL string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:        "Reddit Retrieval Agent",
		Description: "Fetches posts and comments from Reddit",
		Version:     "1.0.0",
		URL:         baseURL,
		Provider:    a2a.Provider{Organization: "redscout"},
		Skills: []a2a.Skill{{
			ID:          "fetch_posts_by_topic",
			Name:        "Fetch Posts By Topic",
			Description: "Retrieves recent posts for a topic",
			Tags:        []string{"reddit", "retrieval"},
			InputModes:  []string{"application/json"},
			OutputModes: []string{"application/json"},
		}},
	}
}

func (a *fakeAgent) Skills() map[string]SkillHandler { return a.skills }

func echoSkill(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
	return &a2a.SkillResponse{
		Status: a2a.StatusSuccess,
		Result: map[string]any{
			"echo":           req.Parameters,
			"correlation_id": req.Context.CorrelationID,
		},
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		A2A: &config.A2AConfig{
			Host:              "127.0.0.1",
			Port:              8001,
			APIKey:            testAPIKey,
			JWTSecret:         testJWTSecret,
			AgentURLs:         map[config.AgentType]string{config.AgentRetrieval: "http://localhost:8001"},
			HeartbeatInterval: 30 * time.Second,
			RequestTimeout:    5 * time.Second,
		},
		RateLimit: &config.RateLimitConfig{
			BurstLimit:        100,
			RequestsPerMinute: 1000,
			RequestsPerHour:   10000,
		},
	}
}

func newTestServer(t *testing.T, mutate func(cfg *config.Config)) *Server {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	agent := &fakeAgent{
		agentType: config.AgentRetrieval,
		skills: map[string]SkillHandler{
			"fetch_posts_by_topic": echoSkill,
			"always_fails": func(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error) {
				return nil, errors.New("reddit API unreachable")
			},
		},
	}

	srv, err := NewServer(cfg, agent, nil, nil)
	require.NoError(t, err)
	return srv
}

func doRequest(t *testing.T, handler http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:40000"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth_Unauthenticated(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "retrieval", body["agent_type"])
	assert.NotContains(t, body, "database", "no database block without an attached pool")
}

func TestHealth_ReportsDatabasePool(t *testing.T) {
	_, db := util.SetupTestDatabase(t)

	srv := newTestServer(t, nil)
	srv.AttachDB(db)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])

	pool, ok := body["database"].(map[string]any)
	require.True(t, ok, "health report carries the pool block")
	assert.Equal(t, "healthy", pool["status"])
	assert.Contains(t, pool, "open_conns")
	assert.Contains(t, pool, "max_open_conns")
}

func TestAgentCard_Shape(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/.well-known/agent.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var card a2a.AgentCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "Reddit Retrieval Agent", card.Name)
	assert.Equal(t, "http://localhost:8001", card.URL)
	require.Len(t, card.Skills, 1)
	assert.Equal(t, "fetch_posts_by_topic", card.Skills[0].ID)
	assert.Equal(t, []string{"application/json"}, card.Skills[0].InputModes)
}

func TestSkill_AuthMatrix(t *testing.T) {
	srv := newTestServer(t, nil)
	body := a2a.SkillRequest{Parameters: map[string]any{"topic": "golang"}}

	validJWT, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "coordinator",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	forgedJWT, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "intruder",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{"missing credentials", "", http.StatusUnauthorized},
		{"wrong api key", "not-the-key", http.StatusForbidden},
		{"forged jwt", forgedJWT, http.StatusForbidden},
		{"shared api key", testAPIKey, http.StatusOK},
		{"valid jwt", validJWT, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, srv.Handler(), http.MethodPost, "/skills/fetch_posts_by_topic", tc.token, body)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestSkill_Dispatch(t *testing.T) {
	srv := newTestServer(t, nil)

	body := a2a.SkillRequest{
		Parameters: map[string]any{"topic": "golang", "subreddit": "programming"},
		Context:    a2a.RequestContext{CorrelationID: "corr-42"},
	}
	rec := doRequest(t, srv.Handler(), http.MethodPost, "/skills/fetch_posts_by_topic", testAPIKey, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp a2a.SkillResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, a2a.StatusSuccess, resp.Status)
	assert.Equal(t, "corr-42", resp.Result["correlation_id"])
	assert.NotEmpty(t, resp.Timestamp)
}

func TestSkill_UnknownSkillIs404(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodPost, "/skills/no_such_skill", testAPIKey, a2a.SkillRequest{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSkill_HandlerErrorIsHandledResponse(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodPost, "/skills/always_fails", testAPIKey, a2a.SkillRequest{})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp a2a.SkillResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, a2a.StatusError, resp.Status)
	assert.Contains(t, resp.Error, "unreachable")
	assert.NotEmpty(t, resp.Timestamp)
}

func TestRPC_MessageSendViaMetadata(t *testing.T) {
	srv := newTestServer(t, nil)

	req := map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "message/send",
		"params": map[string]any{
			"message": map[string]any{
				"role":      "user",
				"messageId": "msg-1",
				"contextId": "corr-7",
				"parts":     []map[string]any{{"kind": "text", "text": "fetch golang posts"}},
			},
			"metadata": map[string]any{
				"skill":      "fetch_posts_by_topic",
				"parameters": map[string]any{"topic": "golang"},
			},
		},
	}
	rec := doRequest(t, srv.Handler(), http.MethodPost, "/a2a", testAPIKey, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp a2a.RPCResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "task", resp.Result.Kind)
	assert.Equal(t, "msg-1", resp.Result.ID)
	assert.Equal(t, a2a.TaskStateCompleted, resp.Result.Status.State)
	assert.Equal(t, "corr-7", resp.Result.Output["correlation_id"])
}

func TestRPC_MessageSendViaTextPart(t *testing.T) {
	srv := newTestServer(t, nil)

	call, err := json.Marshal(map[string]any{
		"skill":      "fetch_posts_by_topic",
		"parameters": map[string]any{"topic": "kubernetes"},
	})
	require.NoError(t, err)

	req := map[string]any{
		"jsonrpc": "2.0",
		"id":      2,
		"method":  "message/send",
		"params": map[string]any{
			"message": map[string]any{
				"role":  "user",
				"parts": []map[string]any{{"kind": "text", "text": string(call)}},
			},
		},
	}
	rec := doRequest(t, srv.Handler(), http.MethodPost, "/a2a", testAPIKey, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp a2a.RPCResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, a2a.TaskStateCompleted, resp.Result.Status.State)
	assert.NotEmpty(t, resp.Result.ID, "task id is generated when messageId is absent")
}

func TestRPC_FailedSkillSurfacesAsFailedTask(t *testing.T) {
	srv := newTestServer(t, nil)

	req := map[string]any{
		"jsonrpc": "2.0",
		"id":      3,
		"method":  "message/send",
		"params": map[string]any{
			"message":  map[string]any{"role": "user", "messageId": "msg-3"},
			"metadata": map[string]any{"skill": "always_fails"},
		},
	}
	rec := doRequest(t, srv.Handler(), http.MethodPost, "/a2a", testAPIKey, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp a2a.RPCResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, a2a.TaskStateFailed, resp.Result.Status.State)
	assert.Contains(t, resp.Result.Error, "unreachable")
}

func TestRPC_ProtocolErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("parse error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/a2a", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+testAPIKey)
		req.RemoteAddr = "203.0.113.7:40000"
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp a2a.RPCResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, a2a.RPCCodeParseError, resp.Error.Code)
	})

	t.Run("method not found", func(t *testing.T) {
		req := map[string]any{"jsonrpc": "2.0", "id": 4, "method": "tasks/get", "params": map[string]any{}}
		rec := doRequest(t, srv.Handler(), http.MethodPost, "/a2a", testAPIKey, req)

		var resp a2a.RPCResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, a2a.RPCCodeMethodNotFound, resp.Error.Code)
	})

	t.Run("missing skill", func(t *testing.T) {
		req := map[string]any{
			"jsonrpc": "2.0",
			"id":      5,
			"method":  "message/send",
			"params":  map[string]any{"message": map[string]any{"role": "user"}},
		}
		rec := doRequest(t, srv.Handler(), http.MethodPost, "/a2a", testAPIKey, req)

		var resp a2a.RPCResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, a2a.RPCCodeInvalidParams, resp.Error.Code)
	})
}

func TestValidation_OversizedBodyRejected(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/skills/fetch_posts_by_topic", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = maxBodyBytes + 1
	req.RemoteAddr = "203.0.113.7:40000"
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestValidation_LongURLRejected(t *testing.T) {
	srv := newTestServer(t, nil)

	target := "/health?pad=" + strings.Repeat("a", maxURLLength)
	rec := doRequest(t, srv.Handler(), http.MethodGet, target, "", nil)
	assert.Equal(t, http.StatusRequestURITooLong, rec.Code)
}

func TestValidation_BlocklistQueryRejected(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/health?q=%3Cscript%3Ealert(1)%3C/script%3E", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidation_BlocklistBodyRejected(t *testing.T) {
	srv := newTestServer(t, nil)

	body := map[string]any{"parameters": map[string]any{"topic": "x' UNION SELECT password FROM users"}}
	rec := doRequest(t, srv.Handler(), http.MethodPost, "/skills/fetch_posts_by_topic", "", body)

	// Rejected by validation before auth runs.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit_BurstWindowAndHeaders(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.BurstLimit = 2
	})

	for i := 0; i < 2; i++ {
		rec := doRequest(t, srv.Handler(), http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "burst", rec.Header().Get("X-RateLimit-Window"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	h := rec.Header()
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Contains(t, h.Get("Strict-Transport-Security"), "max-age=31536000")
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
	assert.NotEmpty(t, h.Get("Content-Security-Policy"))
}

func TestDiscover_WithoutRegistry(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/discover", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Agents []discoveredAgent `json:"agents"`
		Count  int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Zero(t, body.Count)
	assert.Empty(t, body.Agents)
}

func TestDiscoverAndHeartbeat_WithRegistry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	reg := registry.NewWithClient(client, 30*time.Second)

	cfg := testConfig()
	agent := &fakeAgent{
		agentType: config.AgentRetrieval,
		skills:    map[string]SkillHandler{"fetch_posts_by_topic": echoSkill},
	}
	srv, err := NewServer(cfg, agent, reg, nil)
	require.NoError(t, err)

	// One heartbeat publishes the entry; /discover then lists it,
	// including the serialized agent card.
	srv.publishHeartbeat(context.Background())

	entry, err := reg.Lookup(context.Background(), "retrieval")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001", entry.URL)
	assert.Contains(t, entry.Card, "fetch_posts_by_topic")

	rec := doRequest(t, srv.Handler(), http.MethodGet, "/discover", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Agents []discoveredAgent `json:"agents"`
		Count  int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "retrieval", body.Agents[0].AgentType)
	assert.Equal(t, "Reddit Retrieval Agent", body.Agents[0].Name)

	// Graceful shutdown removes the entry.
	srv.deregister()
	_, err = reg.Lookup(context.Background(), "retrieval")
	assert.ErrorIs(t, err, registry.ErrAgentNotRegistered)
}

func TestAgentID_EncodesAgentType(t *testing.T) {
	srv := newTestServer(t, nil)
	assert.True(t, strings.HasPrefix(srv.AgentID(), "retrieval-"))
	assert.Greater(t, len(srv.AgentID()), len("retrieval-"))
}
