package config

import "time"

// DefaultA2AConfig returns the built-in A2A transport defaults.
// Agent ports follow the conventional 8000-8004 layout.
func DefaultA2AConfig() *A2AConfig {
	return &A2AConfig{
		Host: "0.0.0.0",
		Port: 8000,
		AgentURLs: map[AgentType]string{
			AgentCoordinator: "http://localhost:8000",
			AgentRetrieval:   "http://localhost:8001",
			AgentFilter:      "http://localhost:8002",
			AgentSummarize:   "http://localhost:8003",
			AgentAlert:       "http://localhost:8004",
		},
		HeartbeatInterval: 30 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// DefaultRateLimitConfig returns the built-in rate-limit defaults.
// Loopback and RFC1918 private ranges are whitelisted so intra-cluster
// agent traffic is never throttled.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		BurstLimit:        10,
		RequestsPerMinute: 60,
		RequestsPerHour:   1000,
		WhitelistCIDRs: []string{
			"127.0.0.0/8",
			"::1/128",
			"10.0.0.0/8",
			"172.16.0.0/12",
			"192.168.0.0/16",
		},
	}
}

// DefaultBreakerConfig returns the built-in circuit-breaker defaults.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		FailureThreshold: 5,
		RecoveryTimeout:  60 * time.Second,
	}
}

// DefaultWorkflowConfig returns the built-in pipeline defaults.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		MonitoringInterval: 1 * time.Hour,
		PostLimit:          25,
		RelevanceThreshold: 0.7,
		KeywordWeight:      0.7,
		SemanticWeight:     0.3,
		FanOutWorkers:      4,
		RetrieveTimeout:    60 * time.Second,
		FilterTimeout:      60 * time.Second,
		SummarizeTimeout:   120 * time.Second,
		AlertTimeout:       30 * time.Second,
		LeaseTTL:           5 * time.Minute,
	}
}

// DefaultRecoveryConfig returns the built-in recovery daemon defaults.
func DefaultRecoveryConfig() *RecoveryConfig {
	return &RecoveryConfig{
		CheckInterval:           5 * time.Minute,
		MaxTaskAge:              24 * time.Hour,
		StuckRunningAfter:       1 * time.Hour,
		StalePendingAfter:       30 * time.Minute,
		CrashedRunningAfter:     2 * time.Hour,
		LeaseTTL:                5 * time.Minute,
		RecoveryRetentionAge:    7 * 24 * time.Hour,
		AgentStalenessThreshold: 5 * time.Minute,
	}
}
