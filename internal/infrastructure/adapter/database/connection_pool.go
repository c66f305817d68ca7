package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
)

// PoolStats is a snapshot of the connection pool reported by the health endpoint
type PoolStats struct {
	OpenConnections    int   `json:"openConnections"`
	InUse              int   `json:"inUse"`
	Idle               int   `json:"idle"`
	MaxOpenConnections int   `json:"maxOpenConnections"`
	WaitCount          int64 `json:"waitCount"`
	WaitDurationMs     int64 `json:"waitDurationMs"`
}

func poolStatsOf(s sql.DBStats) PoolStats {
	return PoolStats{
		OpenConnections:    s.OpenConnections,
		InUse:              s.InUse,
		Idle:               s.Idle,
		MaxOpenConnections: s.MaxOpenConnections,
		WaitCount:          s.WaitCount,
		WaitDurationMs:     s.WaitDuration.Milliseconds(),
	}
}

// saturated reports whether more than 80% of the allowed connections are busy
func (s PoolStats) saturated() bool {
	return s.MaxOpenConnections > 0 && float64(s.InUse) > float64(s.MaxOpenConnections)*0.8
}

// ConnectionPoolMonitor samples pool stats and pings the database periodically
type ConnectionPoolMonitor struct {
	sqlDB  *sql.DB
	logger coreport.Logger

	mutex sync.RWMutex
	last  PoolStats

	cancel context.CancelFunc
	done   chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(sqlDB *sql.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{sqlDB: sqlDB, logger: logger}
}

// Start samples once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	m.collect(ctx)

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.collect(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends monitoring and waits for the sampler to exit
func (m *ConnectionPoolMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// Stats returns the most recent sample
func (m *ConnectionPoolMonitor) Stats() PoolStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) collect(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := m.sqlDB.PingContext(pingCtx); err != nil && ctx.Err() == nil {
		m.logger.Error("Database ping failed", map[string]any{"error": err.Error()})
	}

	stats := poolStatsOf(m.sqlDB.Stats())

	m.mutex.Lock()
	m.last = stats
	m.mutex.Unlock()

	if stats.saturated() {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":           stats.InUse,
			"max_open":         stats.MaxOpenConnections,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
			"wait_duration_ms": stats.WaitDurationMs,
		})
	}
}
