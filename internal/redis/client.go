package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Report caching. Reports are pure projections of the enquiry/expense
// tables, so a short TTL plus invalidation on mutation keeps them fresh.

func (c *Client) SetReport(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal report data: %w", err)
	}

	return c.rdb.Set(ctx, "report:"+key, jsonData, ttl).Err()
}

// GetReport unmarshals a cached report into dest. Returns ErrCacheMiss
// when the key is absent or expired.
func (c *Client) GetReport(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "report:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get report: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

// InvalidateReports drops every cached report. Called after any enquiry
// or expense mutation.
func (c *Client) InvalidateReports() error {
	ctx := context.Background()
	keys, err := c.rdb.Keys(ctx, "report:*").Result()
	if err != nil {
		return fmt.Errorf("failed to list report keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

var ErrCacheMiss = fmt.Errorf("cache miss")
