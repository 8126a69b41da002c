package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hackaton-backend/internal/service"
)

// Scheduler periodically advances event statuses as their start and end
// dates pass.
type Scheduler struct {
	events   service.EventService
	interval time.Duration
	logger   *logrus.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// New builds a scheduler. An interval of zero or less disables it; Start
// becomes a no-op.
func New(events service.EventService, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		events:   events,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. Safe to call once; subsequent calls are
// ignored.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.interval <= 0 {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)
	s.logger.WithField("interval", s.interval.String()).Info("event status scheduler started")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			moved, err := s.events.SweepStatuses(ctx, now.UTC())
			if err != nil {
				s.logger.WithError(err).Warn("event status sweep failed")
				continue
			}
			if moved > 0 {
				s.logger.WithField("moved", moved).Info("event statuses advanced")
			}
		}
	}
}

// Shutdown stops the loop and waits for the in-flight sweep to finish.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.cancel()
	<-s.done
	s.started = false
}
