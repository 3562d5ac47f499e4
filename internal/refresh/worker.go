package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const retryDelay = 5 * time.Second

//go:generate mockgen -source=worker.go -destination=mocks/worker_mock.go -package=mocks

// Loader - то, что умеет перезагружать наборы данных
type Loader interface {
	LoadRecords(ctx context.Context) error
	LoadOutlines(ctx context.Context) error
}

// Worker - обработчик очереди перезагрузок
type Worker struct {
	redisClient *redis.Client
	loader      Loader
	logger      *logrus.Logger
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, loader Loader, logger *logrus.Logger) *Worker {
	return &Worker{
		redisClient: redisClient,
		loader:      loader,
		logger:      logger,
	}
}

// Start запускает горутину для обработки очереди перезагрузок
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting refresh worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping refresh worker.")
				return
			default:
				// BRPOP блокируется, пока в очереди нет событий; 0 - без таймаута
				result, err := w.redisClient.BRPop(ctx, 0, refreshQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop refresh event from Redis")
					select {
					case <-ctx.Done():
					case <-time.After(retryDelay):
					}
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event RefreshEvent
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal refresh event from Redis")
					continue
				}

				if err := w.Handle(ctx, event); err != nil {
					w.logger.WithError(err).WithField("dataset", event.Dataset).Error("Refresh failed")
				}
			}
		}
	}()
}

// Handle выполняет одну перезагрузку. Повторов нет: следующий запрос или тик
// планировщика попробует снова.
func (w *Worker) Handle(ctx context.Context, event RefreshEvent) error {
	log := w.logger.WithFields(logrus.Fields{
		"dataset":      event.Dataset,
		"requested_by": event.RequestedBy,
	})
	log.Debug("Processing refresh event...")

	switch event.Dataset {
	case DatasetRecords:
		return w.loader.LoadRecords(ctx)
	case DatasetOutlines:
		return w.loader.LoadOutlines(ctx)
	case DatasetAll:
		// Наборы независимы: ошибка одного не мешает загрузить другой
		return errors.Join(w.loader.LoadRecords(ctx), w.loader.LoadOutlines(ctx))
	default:
		log.Warn("Unknown dataset in refresh event, skipping")
		return fmt.Errorf("unknown dataset %q", event.Dataset)
	}
}
