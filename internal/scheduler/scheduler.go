package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type paymentPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler drives the payment retention sweep outside the request path.
type Scheduler struct {
	paymentService paymentPurger
	interval       time.Duration
	logger         logger.Logger
}

func New(
	paymentService paymentPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		paymentService: paymentService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.paymentService.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired payments",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("expired payments purged",
			logger.Int64("count", purged),
		)
	}
}
