package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval   = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// poolMonitor samples sql.DBStats and reports intervals in which callers
// had to wait for a free connection.
type poolMonitor struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	last   sql.DBStats
}

func newPoolMonitor(stats func() sql.DBStats, logger *slog.Logger) *poolMonitor {
	return &poolMonitor{stats: stats, logger: logger}
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.last = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, m.stats())
		}
	}
}

func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - m.last.WaitCount
	waited := cur.WaitDuration - m.last.WaitDuration
	m.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
