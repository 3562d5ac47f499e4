package refresh

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler периодически ставит в очередь перезагрузку всех наборов
type Scheduler struct {
	publisher Publisher
	interval  time.Duration
	logger    *logrus.Logger
}

func NewScheduler(publisher Publisher, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Start запускает тикер; при нулевом интервале ничего не делает
func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Periodic refresh is disabled")
		return
	}
	s.logger.WithField("interval", s.interval).Info("Starting refresh scheduler...")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping refresh scheduler.")
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

func (s *Scheduler) tick(ctx context.Context) {
	event := RefreshEvent{
		Dataset:     DatasetAll,
		RequestedBy: "scheduler",
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).Error("Failed to schedule refresh")
	}
}
