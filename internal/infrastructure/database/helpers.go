package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"questions-backend/pkg/metrics"
)

// Ping checks the database is reachable, bounded to 5 seconds.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes every pooled connection. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed successfully")

	return nil
}

// PoolStats is a snapshot of pool usage.
type PoolStats struct {
	AcquireCount         int64
	AcquireDuration      time.Duration
	AcquiredConns        int32
	CanceledAcquireCount int64
	ConstructingConns    int32
	EmptyAcquireCount    int64
	IdleConns            int32
	MaxConns             int32
	TotalConns           int32
	NewConnsCount        int64
}

// Stats returns the current pool statistics.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()

	return &PoolStats{
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		AcquiredConns:        raw.AcquiredConns(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		ConstructingConns:    raw.ConstructingConns(),
		EmptyAcquireCount:    raw.EmptyAcquireCount(),
		IdleConns:            raw.IdleConns(),
		MaxConns:             raw.MaxConns(),
		TotalConns:           raw.TotalConns(),
		NewConnsCount:        raw.NewConnsCount(),
	}, nil
}

// AvgAcquireDuration is the mean time spent waiting for a connection.
func (s *PoolStats) AvgAcquireDuration() time.Duration {
	return calculateAvgDuration(s.AcquireDuration, s.AcquireCount)
}

// Utilization is the percentage of MaxConns currently acquired.
func (s *PoolStats) Utilization() float64 {
	if s.MaxConns == 0 {
		return 0
	}
	return float64(s.AcquiredConns) / float64(s.MaxConns) * 100
}

func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}

// MonitorPoolHealth publishes pool gauges every interval and warns on
// saturation. Runs until ctx is cancelled; start it in its own goroutine.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("[MONITOR] Failed to get stats")
				continue
			}
			publishPoolStats(stats)

			if pct := stats.Utilization(); pct > 80 {
				log.Warn().
					Float64("utilization_pct", pct).
					Int32("acquired", stats.AcquiredConns).
					Int32("max", stats.MaxConns).
					Msg("[MONITOR] High pool utilization")
			}

			if avg := stats.AvgAcquireDuration(); avg > 100*time.Millisecond {
				log.Warn().Dur("avg_acquire", avg).Msg("[MONITOR] High acquire latency")
			}

		case <-ctx.Done():
			log.Info().Msg("[MONITOR] Stopping pool health monitoring")
			return
		}
	}
}

func publishPoolStats(stats *PoolStats) {
	metrics.DatabasePoolConnections.WithLabelValues("acquired").Set(float64(stats.AcquiredConns))
	metrics.DatabasePoolConnections.WithLabelValues("idle").Set(float64(stats.IdleConns))
	metrics.DatabasePoolConnections.WithLabelValues("constructing").Set(float64(stats.ConstructingConns))
	metrics.DatabasePoolConnections.WithLabelValues("total").Set(float64(stats.TotalConns))
	metrics.DatabasePoolConnections.WithLabelValues("max").Set(float64(stats.MaxConns))
}
