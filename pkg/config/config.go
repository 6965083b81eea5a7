// Package config provides environment-driven configuration for all agent
// processes. Initialize is the single entry point; it loads, defaults,
// and validates every block and returns a Config ready for use.
package config

import (
	"fmt"
	"log/slog"
	"time"
)

// AgentType identifies one of the five agent variants.
type AgentType string

// Agent type constants. Each runs the same runtime with a different
// skill table.
const (
	AgentCoordinator AgentType = "coordinator"
	AgentRetrieval   AgentType = "retrieval"
	AgentFilter      AgentType = "filter"
	AgentSummarize   AgentType = "summarize"
	AgentAlert       AgentType = "alert"
)

// AllAgentTypes lists every agent variant in pipeline order.
func AllAgentTypes() []AgentType {
	return []AgentType{AgentCoordinator, AgentRetrieval, AgentFilter, AgentSummarize, AgentAlert}
}

// Config is the umbrella configuration object shared by every process.
type Config struct {
	A2A       *A2AConfig
	Registry  *RegistryConfig
	RateLimit *RateLimitConfig
	Breaker   *BreakerConfig
	Workflow  *WorkflowConfig
	Recovery  *RecoveryConfig
	Alert     *AlertConfig
}

// A2AConfig holds the agent-to-agent transport settings.
type A2AConfig struct {
	// Host and Port are the listen address of this agent process.
	Host string
	Port int

	// APIKey is the shared bearer key accepted on protected endpoints.
	APIKey string

	// JWTSecret signs and verifies HS256 tokens; a valid JWT is accepted
	// interchangeably with the shared key.
	JWTSecret string

	// AgentURLs maps each peer agent type to its base URL.
	AgentURLs map[AgentType]string

	// HeartbeatInterval drives both the registry refresh and the
	// agent-state heartbeat row.
	HeartbeatInterval time.Duration

	// RequestTimeout is the server-side deadline for a single request.
	RequestTimeout time.Duration
}

// URLFor returns the configured base URL for an agent type.
func (c *A2AConfig) URLFor(agentType AgentType) (string, error) {
	url, ok := c.AgentURLs[agentType]
	if !ok || url == "" {
		return "", fmt.Errorf("no URL configured for agent type %q", agentType)
	}
	return url, nil
}

// RegistryConfig holds the Redis service-registry settings.
type RegistryConfig struct {
	RedisURL string
}

// RateLimitConfig holds the per-IP sliding-window limits.
type RateLimitConfig struct {
	BurstLimit        int // requests in the last 10 s
	RequestsPerMinute int
	RequestsPerHour   int
	WhitelistCIDRs    []string
}

// BreakerConfig holds circuit-breaker tuning shared by all outbound calls.
type BreakerConfig struct {
	FailureThreshold int
	RecoveryTimeout  time.Duration
}

// WorkflowConfig holds the coordinator's pipeline settings.
type WorkflowConfig struct {
	MonitoringInterval time.Duration
	Schedule           string // optional cron expression; wins over the interval
	Topics             []string
	Subreddits         []string
	PostLimit          int

	RelevanceThreshold float64
	KeywordWeight      float64
	SemanticWeight     float64

	// FanOutWorkers bounds intra-stage parallelism (retrieval fan-out).
	FanOutWorkers int

	RetrieveTimeout  time.Duration
	FilterTimeout    time.Duration
	SummarizeTimeout time.Duration
	AlertTimeout     time.Duration

	// LeaseTTL is the lease duration taken while a stage task executes.
	LeaseTTL time.Duration
}

// RecoveryConfig holds the recovery daemon settings.
type RecoveryConfig struct {
	CheckInterval time.Duration

	// MaxTaskAge bounds how far back the failed-task scan looks.
	MaxTaskAge time.Duration

	// StuckRunningAfter marks running tasks as scan candidates.
	StuckRunningAfter time.Duration

	// StalePendingAfter marks pending tasks as scan candidates.
	StalePendingAfter time.Duration

	// CrashedRunningAfter separates "presumed crashed" (retry) from
	// "might still be running" (manual) for running candidates.
	CrashedRunningAfter time.Duration

	// LeaseTTL is the lease duration taken while executing a strategy.
	LeaseTTL time.Duration

	// RecoveryRetentionAge bounds cleanup of terminal recovery rows.
	RecoveryRetentionAge time.Duration

	// AgentStalenessThreshold marks agents without a recent heartbeat
	// as offline.
	AgentStalenessThreshold time.Duration
}

// AlertConfig holds alert delivery settings.
type AlertConfig struct {
	// Channels selects the delivery channels the coordinator requests
	// for every batch.
	Channels []string

	SlackWebhookURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	EmailRecipients []string
}

// Initialize loads, defaults, and validates the full configuration from
// the environment.
func Initialize() (*Config, error) {
	cfg := load()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized",
		"topics", len(cfg.Workflow.Topics),
		"subreddits", len(cfg.Workflow.Subreddits),
		"fan_out_workers", cfg.Workflow.FanOutWorkers)

	return cfg, nil
}
