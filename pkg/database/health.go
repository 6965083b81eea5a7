package database

import (
	"context"
	stdsql "database/sql"
	"time"
)

// PoolHealth is the database block of an agent's health report: one
// ping round-trip plus a snapshot of the database/sql pool counters.
type PoolHealth struct {
	Status       string `json:"status"`
	PingMillis   int64  `json:"ping_ms"`
	OpenConns    int    `json:"open_conns"`
	InUse        int    `json:"in_use"`
	Idle         int    `json:"idle"`
	WaitCount    int64  `json:"wait_count"`
	WaitMillis   int64  `json:"wait_ms"`
	MaxOpenConns int    `json:"max_open_conns"`
}

// CheckPool pings the database under ctx and reports the pool state.
// On ping failure the report is still returned, marked unreachable,
// alongside the error.
func CheckPool(ctx context.Context, db *stdsql.DB) (*PoolHealth, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:     "unreachable",
			PingMillis: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &PoolHealth{
		Status:       "healthy",
		PingMillis:   time.Since(start).Milliseconds(),
		OpenConns:    stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		WaitCount:    stats.WaitCount,
		WaitMillis:   stats.WaitDuration.Milliseconds(),
		MaxOpenConns: stats.MaxOpenConnections,
	}, nil
}
