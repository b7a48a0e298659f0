// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
)

// reportCache implements adapter.ReportCache on a Redis client. Payloads
// are stored as JSON under "report:<year>:..." keys so a whole year can be
// invalidated by key pattern.
type reportCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client, logger *slog.Logger) adapter.ReportCache {
	return &reportCache{
		client: client,
		logger: logger,
	}
}

// Get unmarshals the cached payload for key into dest. A missing key or a
// payload that no longer unmarshals both report a miss.
func (c *reportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("discarding unreadable cached report",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

// Set stores the payload for key with the given TTL.
func (c *reportCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// InvalidateYear removes every cached report that covers the year.
func (c *reportCache) InvalidateYear(ctx context.Context, year int) error {
	pattern := fmt.Sprintf("report:%d:*", year)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan %s: %w", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", pattern, err)
	}

	c.logger.Debug("invalidated cached reports",
		slog.Int("year", year),
		slog.Int("keys", len(keys)))
	return nil
}
