package redisclient

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

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetSession stores an operator session token with TTL
func (c *Client) SetSession(ctx context.Context, token, email string, ttl time.Duration) error {
	return c.rdb.Set(ctx, "session:"+token, email, ttl).Err()
}

// GetSession returns the email bound to a session token, empty when the
// token is unknown or expired
func (c *Client) GetSession(ctx context.Context, token string) (string, error) {
	email, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

// DeleteSession revokes a session token
func (c *Client) DeleteSession(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// CacheDashboardCounts stores the stat-card counts with a short TTL
func (c *Client) CacheDashboardCounts(ctx context.Context, counts interface{}, ttl time.Duration) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to marshal counts: %w", err)
	}
	return c.rdb.Set(ctx, "dashboard:counts", data, ttl).Err()
}

// GetDashboardCounts loads cached stat-card counts into dst, returning false
// when no fresh cache entry exists
func (c *Client) GetDashboardCounts(ctx context.Context, dst interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, "dashboard:counts").Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal counts: %w", err)
	}
	return true, nil
}
