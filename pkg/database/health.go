package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolHealth is the result of one connectivity check plus the pool
// counters worth watching when a large analysis run saturates the pool.
type PoolHealth struct {
	Status     string `json:"status"`
	PingMillis int64  `json:"ping_ms"`
	Open       int    `json:"open_connections"`
	InUse      int    `json:"in_use"`
	Idle       int    `json:"idle"`
	WaitCount  int64  `json:"wait_count"`
	WaitMillis int64  `json:"wait_ms"`
	MaxOpen    int    `json:"max_open_conns"`
}

// Health pings the database and snapshots the connection pool. On ping
// failure the unhealthy status is returned together with the error so
// callers can report the cause.
func Health(ctx context.Context, db *sql.DB) (*PoolHealth, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:     "unhealthy",
			PingMillis: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &PoolHealth{
		Status:     "healthy",
		PingMillis: time.Since(start).Milliseconds(),
		Open:       stats.OpenConnections,
		InUse:      stats.InUse,
		Idle:       stats.Idle,
		WaitCount:  stats.WaitCount,
		WaitMillis: stats.WaitDuration.Milliseconds(),
		MaxOpen:    stats.MaxOpenConnections,
	}, nil
}
