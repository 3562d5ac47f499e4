package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/coverage_map/internal/service"
)

// PayloadCache хранит готовые ответы диаграммы и карты в Redis
type PayloadCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewPayloadCache(redisClient *redis.Client, ttl time.Duration) service.PayloadCache {
	return &PayloadCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get пытается получить ответ из Redis, при промахе возвращает nil, nil
func (c *PayloadCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payload from cache: %w", err)
	}
	return val, nil
}

// Set сохраняет ответ в Redis на ttl
func (c *PayloadCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.redisClient.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set payload in cache: %w", err)
	}
	return nil
}
