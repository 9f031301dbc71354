package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/config"
)

// NewRedisClient creates a Redis client and verifies connectivity. The
// caller treats a connection failure as non-fatal and runs without a cache.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// PredictionCache stores serialized prediction results keyed by a digest of
// the raw review text. The model is deterministic, so identical text always
// maps to an identical result; entries expire after the configured TTL.
type PredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPredictionCache creates a PredictionCache on top of a Redis client.
func NewPredictionCache(client *redis.Client, ttl time.Duration) *PredictionCache {
	return &PredictionCache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives the cache key for a raw review text.
func Key(review string) string {
	sum := sha256.Sum256([]byte(review))
	return "prediction:" + hex.EncodeToString(sum[:])
}

// Get returns the cached value for the key, or nil on a miss.
func (c *PredictionCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores the value under the key with the configured TTL.
func (c *PredictionCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}
