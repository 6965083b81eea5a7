package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Defaults(t *testing.T) {
	t.Setenv("A2A_API_KEY", "test-key")

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.A2A.Port)
	assert.Equal(t, 30*time.Second, cfg.A2A.HeartbeatInterval)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Registry.RedisURL)
	assert.Equal(t, 10, cfg.RateLimit.BurstLimit)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 1000, cfg.RateLimit.RequestsPerHour)
	assert.Equal(t, 5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, 0.7, cfg.Workflow.RelevanceThreshold)
	assert.Equal(t, 120*time.Second, cfg.Workflow.SummarizeTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Recovery.CheckInterval)
	assert.Equal(t, 7*24*time.Hour, cfg.Recovery.RecoveryRetentionAge)
	assert.Equal(t, []string{"slack", "email"}, cfg.Alert.Channels)
}

func TestInitialize_EnvironmentOverrides(t *testing.T) {
	t.Setenv("A2A_API_KEY", "test-key")
	t.Setenv("A2A_PORT", "9100")
	t.Setenv("RETRIEVAL_AGENT_URL", "http://retrieval.internal:8001")
	t.Setenv("MONITORING_INTERVAL_HOURS", "6")
	t.Setenv("REDDIT_TOPICS", "golang, distributed systems ,observability")
	t.Setenv("RELEVANCE_THRESHOLD", "0.55")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("RATE_LIMIT_PER_HOUR", "5000")

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.A2A.Port)
	url, err := cfg.A2A.URLFor(AgentRetrieval)
	require.NoError(t, err)
	assert.Equal(t, "http://retrieval.internal:8001", url)
	assert.Equal(t, 6*time.Hour, cfg.Workflow.MonitoringInterval)
	assert.Equal(t, []string{"golang", "distributed systems", "observability"}, cfg.Workflow.Topics)
	assert.Equal(t, 0.55, cfg.Workflow.RelevanceThreshold)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 5000, cfg.RateLimit.RequestsPerHour)
}

func TestInitialize_RequiresCredentials(t *testing.T) {
	t.Setenv("A2A_API_KEY", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A2A_API_KEY")
}

func TestInitialize_JWTSecretAloneSufficient(t *testing.T) {
	t.Setenv("A2A_API_KEY", "")
	t.Setenv("JWT_SECRET", "signing-secret")

	cfg, err := Initialize()
	require.NoError(t, err)
	assert.Equal(t, "signing-secret", cfg.A2A.JWTSecret)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Setenv("A2A_API_KEY", "test-key")
	t.Setenv("A2A_PORT", "70000")
	t.Setenv("RELEVANCE_THRESHOLD", "1.5")
	t.Setenv("RATE_LIMIT_BURST", "-1")

	_, err := Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A2A_PORT")
	assert.Contains(t, err.Error(), "RELEVANCE_THRESHOLD")
	assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	t.Setenv("A2A_API_KEY", "test-key")
	t.Setenv("RELEVANCE_KEYWORD_WEIGHT", "0.9")
	t.Setenv("RELEVANCE_SEMANTIC_WEIGHT", "0.3")

	_, err := Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights must sum to 1")
}

func TestValidate_EmailRequiresSMTPHost(t *testing.T) {
	t.Setenv("A2A_API_KEY", "test-key")
	t.Setenv("EMAIL_RECIPIENTS", "oncall@example.com")
	t.Setenv("SMTP_HOST", "")

	_, err := Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}

func TestValidate_RejectsUnknownAlertChannel(t *testing.T) {
	t.Setenv("A2A_API_KEY", "test-key")
	t.Setenv("ALERT_CHANNELS", "slack,pager")

	_, err := Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALERT_CHANNELS")
}

func TestURLFor_UnknownAgent(t *testing.T) {
	cfg := DefaultA2AConfig()
	delete(cfg.AgentURLs, AgentAlert)

	_, err := cfg.URLFor(AgentAlert)
	assert.Error(t, err)
}
