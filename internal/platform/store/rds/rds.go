// Package rds provides a redis client for the cache seam
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client wraps go-redis with the small surface the store needs
type Client struct {
	inner *redis.Client
}

// Open constructs a client; it does not dial (connections are pooled lazily)
func Open(cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("rds: no addr configured")
	}
	return &Client{inner: redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})}, nil
}

// Get returns the value for key, ok=false on a clean miss
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.inner.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// SetTTL stores val under key with the given expiry
func (c *Client) SetTTL(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, key, val, ttl).Err()
}

// Ping verifies redis connectivity
func (c *Client) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx).Err()
}

// Close closes the connection pool
func (c *Client) Close() error { return c.inner.Close() }
