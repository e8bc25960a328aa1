package worker

import (
	"context"
	"log/slog"
	"time"

	"booking-gateway/internal/usecase/commands"
)

// Purger periodically deletes expired sessions and the booking flows they left behind.
type Purger struct {
	sessions commands.SessionCommands
	logger   *slog.Logger
	interval time.Duration
}

func NewPurger(sessions commands.SessionCommands, interval time.Duration, logger *slog.Logger) *Purger {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Purger{
		sessions: sessions,
		logger:   logger,
		interval: interval,
	}
}

// Run blocks until ctx is done.
func (p *Purger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *Purger) purge(ctx context.Context) {
	n, err := p.sessions.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("purge of expired sessions failed", "error", err)
		}
		return
	}
	if n > 0 {
		p.logger.Info("expired sessions purged", "deleted", n)
	}
}
