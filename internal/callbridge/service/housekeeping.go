package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/store"
)

// DefaultSweepInterval is how often the housekeeping worker runs.
const DefaultSweepInterval = time.Hour

// HousekeepingService sweeps overdue pending invitations into the expired
// status in the background. Expiry is still enforced inline at accept/reject
// time; the sweep just keeps listings and stats honest for tokens nobody
// ever tries to use.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// Start launches the background sweep loop. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	if s.Interval <= 0 {
		s.Interval = DefaultSweepInterval
	}
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run()
}

// Stop signals the loop to exit and blocks until it has.
func (s *HousekeepingService) Stop() {
	if s.stopCh == nil {
		return
	}
	close(s.stopCh)
	<-s.doneCh
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once at startup so a long-stopped service catches up immediately.
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep flips every overdue pending invitation to expired.
func (s *HousekeepingService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.Store.Invitations().ExpireOverdue(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("invitation expiry sweep failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.Logger.Info("expired overdue invitations", slog.Int64("count", n))
	}
}

// Sweep runs a single sweep synchronously. Exposed for callers that want an
// on-demand pass outside the background loop.
func (s *HousekeepingService) Sweep(ctx context.Context) (int64, error) {
	return s.Store.Invitations().ExpireOverdue(ctx, time.Now().UTC())
}
