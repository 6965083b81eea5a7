// Package runtime is the shared HTTP host every agent variant runs in.
// It serves the protocol surface (health, agent card, discovery, skill
// invocation, JSON-RPC), applies the middleware stack, and keeps the
// agent visible via registry and database heartbeats.
package runtime

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/redscout/redscout/ent/agentstate"
	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/ratelimit"
	"github.com/redscout/redscout/pkg/registry"
	"github.com/redscout/redscout/pkg/taskstore"
)

// SkillHandler executes one skill. A returned error becomes a handled
// failure response (HTTP 200 with status "error"); handlers that need
// the "skipped" status build the response themselves.
type SkillHandler func(ctx context.Context, req a2a.SkillRequest) (*a2a.SkillResponse, error)

// Agent is the behaviour a concrete agent variant plugs into the runtime.
type Agent interface {
	Type() config.AgentType
	Card(baseURL string) a2a.AgentCard
	Skills() map[string]SkillHandler
}

// Server hosts one agent over HTTP.
type Server struct {
	cfg     *config.Config
	agent   Agent
	agentID string
	baseURL string

	registry *registry.Registry // nil disables registry heartbeats
	store    *taskstore.Store   // nil disables agent-state heartbeats
	db       *stdsql.DB         // nil omits the database health block
	limiter  *ratelimit.Limiter

	engine    *gin.Engine
	startedAt time.Time
}

// NewServer wires the middleware stack and routes for one agent. The
// registry and store are optional so the runtime stays usable in tests
// and in stripped-down deployments.
func NewServer(cfg *config.Config, agent Agent, reg *registry.Registry, store *taskstore.Store) (*Server, error) {
	limiter, err := ratelimit.New(ratelimit.Config{
		BurstLimit:        cfg.RateLimit.BurstLimit,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
		WhitelistCIDRs:    cfg.RateLimit.WhitelistCIDRs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build rate limiter: %w", err)
	}

	baseURL, err := cfg.A2A.URLFor(agent.Type())
	if err != nil {
		baseURL = fmt.Sprintf("http://%s:%d", cfg.A2A.Host, cfg.A2A.Port)
	}

	s := &Server{
		cfg:       cfg,
		agent:     agent,
		agentID:   fmt.Sprintf("%s-%s", agent.Type(), uuid.NewString()[:8]),
		baseURL:   baseURL,
		registry:  reg,
		store:     store,
		limiter:   limiter,
		startedAt: time.Now(),
	}
	s.engine = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Order matters: audit first so rejected requests are still logged,
	// validation before rate limiting so oversize bodies never count
	// against a client's quota.
	engine.Use(s.auditLog(), s.inputValidation(), s.rateLimit(), s.securityHeaders())

	engine.GET("/health", s.handleHealth)
	engine.GET("/.well-known/agent.json", s.handleAgentCard)
	engine.GET("/discover", s.handleDiscover)

	authed := engine.Group("/", s.requireAuth())
	authed.POST("/skills/:name", s.handleSkill)
	authed.POST("/a2a", s.handleRPC)

	return engine
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// AttachDB enables the database block of the health report.
func (s *Server) AttachDB(db *stdsql.DB) {
	s.db = db
}

// AgentID is this process instance's identifier in agent-state rows.
func (s *Server) AgentID() string {
	return s.agentID
}

// Run serves until ctx is cancelled, then deregisters and drains
// in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.A2A.Host, s.cfg.A2A.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.heartbeatLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	slog.Info("Agent server started", "agent_type", s.agent.Type(), "addr", addr)

	select {
	case <-ctx.Done():
		s.deregister()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		slog.Info("Agent server stopped", "agent_type", s.agent.Type())
		return nil
	case err := <-errCh:
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}
}

// heartbeatLoop publishes liveness to the registry and the database
// until ctx is cancelled. The first publish happens immediately so the
// agent is discoverable as soon as it is listening.
func (s *Server) heartbeatLoop(ctx context.Context) {
	s.publishHeartbeat(ctx)

	ticker := time.NewTicker(s.cfg.A2A.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.publishHeartbeat(ctx)
		}
	}
}

func (s *Server) publishHeartbeat(ctx context.Context) {
	card := s.agent.Card(s.baseURL)

	if s.registry != nil {
		rawCard, err := json.Marshal(card)
		if err != nil {
			rawCard = nil
		}
		err = s.registry.Heartbeat(ctx, registry.Entry{
			AgentType: string(s.agent.Type()),
			Name:      card.Name,
			Version:   card.Version,
			URL:       s.baseURL,
			Card:      string(rawCard),
		})
		if err != nil {
			slog.Warn("Registry heartbeat failed", "agent_type", s.agent.Type(), "error", err)
		}
	}

	if s.store != nil {
		err := s.store.UpsertAgentHeartbeat(ctx, taskstore.HeartbeatInput{
			AgentID:      s.agentID,
			AgentType:    string(s.agent.Type()),
			Status:       agentstate.StatusIdle,
			Capabilities: s.skillNames(),
		})
		if err != nil {
			slog.Warn("Agent state heartbeat failed", "agent_id", s.agentID, "error", err)
		}
	}
}

// deregister removes the agent from discovery on graceful shutdown. A
// crash skips this and the registry TTL cleans up instead.
func (s *Server) deregister() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.registry != nil {
		if err := s.registry.Deregister(ctx, string(s.agent.Type())); err != nil {
			slog.Warn("Registry deregistration failed", "agent_type", s.agent.Type(), "error", err)
		}
	}
	if s.store != nil {
		err := s.store.UpsertAgentHeartbeat(ctx, taskstore.HeartbeatInput{
			AgentID:   s.agentID,
			AgentType: string(s.agent.Type()),
			Status:    agentstate.StatusOffline,
		})
		if err != nil {
			slog.Warn("Failed to mark agent offline", "agent_id", s.agentID, "error", err)
		}
	}
}

func (s *Server) skillNames() []string {
	skills := s.agent.Skills()
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// executeSkill runs a handler under the request deadline and normalises
// the outcome into a SkillResponse.
func (s *Server) executeSkill(ctx context.Context, handler SkillHandler, req a2a.SkillRequest) *a2a.SkillResponse {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.A2A.RequestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := handler(ctx, req)

	if err != nil {
		resp = &a2a.SkillResponse{Status: a2a.StatusError, Error: err.Error()}
	} else if resp == nil {
		resp = &a2a.SkillResponse{Status: a2a.StatusError, Error: "skill returned no response"}
	}
	if resp.Timestamp == "" {
		resp.Timestamp = time.Now().Format(time.RFC3339)
	}

	if s.store != nil {
		recCtx, recCancel := context.WithTimeout(context.Background(), 5*time.Second)
		recErr := s.store.RecordTaskOutcome(recCtx, s.agentID, resp.Status != a2a.StatusError, time.Since(start))
		recCancel()
		if recErr != nil {
			slog.Warn("Failed to record task outcome", "agent_id", s.agentID, "error", recErr)
		}
	}

	if resp.Status == a2a.StatusError {
		slog.Warn("Skill execution failed",
			"agent_type", s.agent.Type(),
			"correlation_id", req.Context.CorrelationID,
			"error", resp.Error)
	}
	return resp
}
