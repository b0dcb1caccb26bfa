package database

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// ConnectionPoolMetrics is a snapshot of database/sql pool statistics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// Saturation returns the share of the pool in use, 0-1
func (m ConnectionPoolMetrics) Saturation() float64 {
	if m.MaxOpenConnections <= 0 {
		return 0
	}
	return float64(m.InUse) / float64(m.MaxOpenConnections)
}

// PoolMonitor samples the connection pool on demand; the scheduler drives it
type PoolMonitor struct {
	db     *gorm.DB
	logger coreport.Logger

	mu   sync.RWMutex
	last *ConnectionPoolMetrics
}

// NewPoolMonitor creates a pool monitor
func NewPoolMonitor(db *gorm.DB, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{db: db, logger: logger}
}

// LastMetrics returns the most recent sample, zero before the first Collect
func (p *PoolMonitor) LastMetrics() ConnectionPoolMetrics {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.last == nil {
		return ConnectionPoolMetrics{}
	}
	return *p.last
}

// Collect samples the pool, logs it and warns when it is nearly exhausted
func (p *PoolMonitor) Collect() (ConnectionPoolMetrics, error) {
	sqlDB, err := p.db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	metrics := ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}

	p.mu.Lock()
	p.last = &metrics
	p.mu.Unlock()

	fields := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
	if metrics.Saturation() > 0.8 {
		p.logger.Warn("Database connection pool nearly exhausted", fields)
	} else {
		p.logger.Debug("Database connection pool stats", fields)
	}
	return metrics, nil
}
