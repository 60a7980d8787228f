package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// RedisEmbeddingCache stores embedding vectors in Redis so identical texts
// are not re-embedded across requests or instances.
type RedisEmbeddingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisEmbeddingCache connects to Redis and verifies the connection
func NewRedisEmbeddingCache(cfg *config.Config, logger *zap.Logger) (*RedisEmbeddingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisEmbeddingCache{
		client: client,
		ttl:    time.Duration(cfg.Redis.TTLHours) * time.Hour,
		logger: logger,
	}, nil
}

// Get retrieves a cached vector. Cache errors are logged and treated as
// misses; the embedding call is the fallback.
func (c *RedisEmbeddingCache) Get(ctx context.Context, key string) ([]float64, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("redis get failed", zap.Error(err))
		}
		return nil, false
	}

	var vector []float64
	if err := json.Unmarshal(data, &vector); err != nil {
		return nil, false
	}
	return vector, true
}

// Set stores a vector with the configured TTL
func (c *RedisEmbeddingCache) Set(ctx context.Context, key string, vector []float64) {
	data, err := json.Marshal(vector)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("redis set failed", zap.Error(err))
	}
}

// Close closes the underlying Redis connection
func (c *RedisEmbeddingCache) Close() error {
	return c.client.Close()
}
