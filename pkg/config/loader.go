package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// load builds the full configuration from the environment, falling back
// to the compiled-in defaults for anything unset.
func load() *Config {
	return &Config{
		A2A:       loadA2A(),
		Registry:  loadRegistry(),
		RateLimit: loadRateLimit(),
		Breaker:   loadBreaker(),
		Workflow:  loadWorkflow(),
		Recovery:  loadRecovery(),
		Alert:     loadAlert(),
	}
}

func loadA2A() *A2AConfig {
	cfg := DefaultA2AConfig()

	cfg.Host = envString("A2A_HOST", cfg.Host)
	cfg.Port = envInt("A2A_PORT", cfg.Port)
	cfg.APIKey = os.Getenv("A2A_API_KEY")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.HeartbeatInterval = envDuration("A2A_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval)
	cfg.RequestTimeout = envDuration("A2A_REQUEST_TIMEOUT", cfg.RequestTimeout)

	// Per-agent URL overrides, e.g. RETRIEVAL_AGENT_URL.
	for _, agentType := range AllAgentTypes() {
		key := strings.ToUpper(string(agentType)) + "_AGENT_URL"
		if url := os.Getenv(key); url != "" {
			cfg.AgentURLs[agentType] = url
		}
	}

	return cfg
}

func loadRegistry() *RegistryConfig {
	return &RegistryConfig{
		RedisURL: envString("REDIS_URL", "redis://localhost:6379/0"),
	}
}

func loadRateLimit() *RateLimitConfig {
	cfg := DefaultRateLimitConfig()

	cfg.BurstLimit = envInt("RATE_LIMIT_BURST", cfg.BurstLimit)
	cfg.RequestsPerMinute = envInt("RATE_LIMIT_PER_MINUTE", cfg.RequestsPerMinute)
	cfg.RequestsPerHour = envInt("RATE_LIMIT_PER_HOUR", cfg.RequestsPerHour)
	cfg.WhitelistCIDRs = envList("RATE_LIMIT_WHITELIST_CIDRS", cfg.WhitelistCIDRs)

	return cfg
}

func loadBreaker() *BreakerConfig {
	cfg := DefaultBreakerConfig()

	cfg.FailureThreshold = envInt("BREAKER_FAILURE_THRESHOLD", cfg.FailureThreshold)
	cfg.RecoveryTimeout = envDuration("BREAKER_RECOVERY_TIMEOUT", cfg.RecoveryTimeout)

	return cfg
}

func loadWorkflow() *WorkflowConfig {
	cfg := DefaultWorkflowConfig()

	if hours := envInt("MONITORING_INTERVAL_HOURS", 0); hours > 0 {
		cfg.MonitoringInterval = time.Duration(hours) * time.Hour
	}
	cfg.Schedule = os.Getenv("MONITORING_SCHEDULE")
	cfg.Topics = envList("REDDIT_TOPICS", cfg.Topics)
	cfg.Subreddits = envList("REDDIT_SUBREDDITS", cfg.Subreddits)
	cfg.PostLimit = envInt("REDDIT_POST_LIMIT", cfg.PostLimit)

	cfg.RelevanceThreshold = envFloat("RELEVANCE_THRESHOLD", cfg.RelevanceThreshold)
	cfg.KeywordWeight = envFloat("RELEVANCE_KEYWORD_WEIGHT", cfg.KeywordWeight)
	cfg.SemanticWeight = envFloat("RELEVANCE_SEMANTIC_WEIGHT", cfg.SemanticWeight)

	cfg.FanOutWorkers = envInt("WORKFLOW_FAN_OUT_WORKERS", cfg.FanOutWorkers)

	cfg.RetrieveTimeout = envDuration("STAGE_RETRIEVE_TIMEOUT", cfg.RetrieveTimeout)
	cfg.FilterTimeout = envDuration("STAGE_FILTER_TIMEOUT", cfg.FilterTimeout)
	cfg.SummarizeTimeout = envDuration("STAGE_SUMMARIZE_TIMEOUT", cfg.SummarizeTimeout)
	cfg.AlertTimeout = envDuration("STAGE_ALERT_TIMEOUT", cfg.AlertTimeout)

	cfg.LeaseTTL = envDuration("TASK_LEASE_TTL", cfg.LeaseTTL)

	return cfg
}

func loadRecovery() *RecoveryConfig {
	cfg := DefaultRecoveryConfig()

	cfg.CheckInterval = envDuration("RECOVERY_CHECK_INTERVAL", cfg.CheckInterval)
	cfg.MaxTaskAge = envDuration("RECOVERY_MAX_TASK_AGE", cfg.MaxTaskAge)
	cfg.StuckRunningAfter = envDuration("RECOVERY_STUCK_RUNNING_AFTER", cfg.StuckRunningAfter)
	cfg.StalePendingAfter = envDuration("RECOVERY_STALE_PENDING_AFTER", cfg.StalePendingAfter)
	cfg.CrashedRunningAfter = envDuration("RECOVERY_CRASHED_RUNNING_AFTER", cfg.CrashedRunningAfter)
	cfg.LeaseTTL = envDuration("TASK_LEASE_TTL", cfg.LeaseTTL)
	cfg.RecoveryRetentionAge = envDuration("RECOVERY_RETENTION_AGE", cfg.RecoveryRetentionAge)
	cfg.AgentStalenessThreshold = envDuration("AGENT_STALENESS_THRESHOLD", cfg.AgentStalenessThreshold)

	return cfg
}

func loadAlert() *AlertConfig {
	return &AlertConfig{
		Channels:        envList("ALERT_CHANNELS", []string{"slack", "email"}),
		SlackWebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        envInt("SMTP_PORT", 587),
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:        envString("SMTP_FROM", "redscout@localhost"),
		EmailRecipients: envList("EMAIL_RECIPIENTS", nil),
	}
}

// Validate checks cross-field consistency for every block.
func (c *Config) Validate() error {
	var errs []error

	if c.A2A.Port < 1 || c.A2A.Port > 65535 {
		errs = append(errs, newValidationError("A2A_PORT", fmt.Sprintf("%d", c.A2A.Port), "must be between 1 and 65535"))
	}
	if c.A2A.APIKey == "" && c.A2A.JWTSecret == "" {
		errs = append(errs, newValidationError("A2A_API_KEY", "", "either A2A_API_KEY or JWT_SECRET must be set"))
	}
	if c.A2A.HeartbeatInterval <= 0 {
		errs = append(errs, newValidationError("A2A_HEARTBEAT_INTERVAL", c.A2A.HeartbeatInterval.String(), "must be positive"))
	}

	if c.Registry.RedisURL == "" {
		errs = append(errs, newValidationError("REDIS_URL", "", "must not be empty"))
	}

	if c.RateLimit.BurstLimit <= 0 {
		errs = append(errs, newValidationError("RATE_LIMIT_BURST", fmt.Sprintf("%d", c.RateLimit.BurstLimit), "must be positive"))
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		errs = append(errs, newValidationError("RATE_LIMIT_PER_MINUTE", fmt.Sprintf("%d", c.RateLimit.RequestsPerMinute), "must be positive"))
	}
	if c.RateLimit.RequestsPerHour < c.RateLimit.RequestsPerMinute {
		errs = append(errs, newValidationError("RATE_LIMIT_PER_HOUR", fmt.Sprintf("%d", c.RateLimit.RequestsPerHour), "must be at least the per-minute limit"))
	}

	if c.Breaker.FailureThreshold <= 0 {
		errs = append(errs, newValidationError("BREAKER_FAILURE_THRESHOLD", fmt.Sprintf("%d", c.Breaker.FailureThreshold), "must be positive"))
	}

	if c.Workflow.RelevanceThreshold < 0 || c.Workflow.RelevanceThreshold > 1 {
		errs = append(errs, newValidationError("RELEVANCE_THRESHOLD", fmt.Sprintf("%g", c.Workflow.RelevanceThreshold), "must be between 0 and 1"))
	}
	if sum := c.Workflow.KeywordWeight + c.Workflow.SemanticWeight; sum < 0.999 || sum > 1.001 {
		errs = append(errs, newValidationError("RELEVANCE_KEYWORD_WEIGHT", fmt.Sprintf("%g", c.Workflow.KeywordWeight), "keyword and semantic weights must sum to 1"))
	}
	if c.Workflow.FanOutWorkers <= 0 {
		errs = append(errs, newValidationError("WORKFLOW_FAN_OUT_WORKERS", fmt.Sprintf("%d", c.Workflow.FanOutWorkers), "must be positive"))
	}
	if c.Workflow.LeaseTTL <= 0 {
		errs = append(errs, newValidationError("TASK_LEASE_TTL", c.Workflow.LeaseTTL.String(), "must be positive"))
	}

	if c.Recovery.CheckInterval <= 0 {
		errs = append(errs, newValidationError("RECOVERY_CHECK_INTERVAL", c.Recovery.CheckInterval.String(), "must be positive"))
	}
	if c.Recovery.CrashedRunningAfter <= c.Recovery.StuckRunningAfter {
		errs = append(errs, newValidationError("RECOVERY_CRASHED_RUNNING_AFTER", c.Recovery.CrashedRunningAfter.String(), "must exceed RECOVERY_STUCK_RUNNING_AFTER"))
	}

	for _, channel := range c.Alert.Channels {
		if channel != "slack" && channel != "email" {
			errs = append(errs, newValidationError("ALERT_CHANNELS", channel, "must be slack or email"))
		}
	}
	if len(c.Alert.EmailRecipients) > 0 && c.Alert.SMTPHost == "" {
		errs = append(errs, newValidationError("SMTP_HOST", "", "required when EMAIL_RECIPIENTS is set"))
	}

	return combineValidationErrors(errs)
}
