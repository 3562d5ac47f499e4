// Package refresh ставит перезагрузку наборов данных в очередь Redis и выполняет её в фоне.
package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	refreshQueueKey = "coverage_refresh_events"
)

// Наборы данных, которые можно перезагрузить
const (
	DatasetRecords  = "records"
	DatasetOutlines = "outlines"
	DatasetAll      = "all"
)

// RefreshEvent - запрос на перезагрузку набора данных
type RefreshEvent struct {
	Dataset     string    `json:"dataset"`
	RequestedBy string    `json:"requested_by"`
	Timestamp   time.Time `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// Publisher - интерфейс для постановки перезагрузки в очередь
type Publisher interface {
	Publish(ctx context.Context, event RefreshEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event RefreshEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, refreshQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish refresh event to Redis: %w", err)
	}
	return nil
}
