package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ommivivekanandsai/EduFolio/internal/models"
)

const keyPrefix = "portfolio:"

// RedisCache implements RecordCache on Redis. Records are stored as JSON
// under portfolio:<studentId> with no expiry: the entry is only ever
// replaced by the next successful save or dropped by an admin delete.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg Config) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{rdb: rdb}, nil
}

func (c *RedisCache) Put(ctx context.Context, record *models.PortfolioRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+record.StudentID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, studentID string) (*models.PortfolioRecord, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+studentID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var record models.PortfolioRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to deserialize record: %w", err)
	}
	return &record, nil
}

func (c *RedisCache) Delete(ctx context.Context, studentID string) error {
	if err := c.rdb.Del(ctx, keyPrefix+studentID).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}
