// Package es provides a thin client over the official Elasticsearch driver
package es

import (
	"context"
	"errors"
	"io"

	es8 "github.com/elastic/go-elasticsearch/v8"
)

// Config configures search index connectivity
type Config struct {
	Addresses []string
	Username  string
	Password  string
}

// Response is the raw outcome of one index call
// Body is fully drained so the transport connection can be reused
type Response struct {
	Status int
	Body   []byte
}

// Client wraps the official driver with the small surface the store needs
type Client struct {
	inner *es8.Client
}

// Open constructs a client; it does not dial (the driver connects lazily)
func Open(cfg Config) (*Client, error) {
	if len(cfg.Addresses) == 0 {
		return nil, errors.New("es: no addresses configured")
	}
	cl, err := es8.NewClient(es8.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, err
	}
	return &Client{inner: cl}, nil
}

// Search runs a query body against index and returns the raw response.
// Transport-level failures are returned as-is so callers can classify them
func (c *Client) Search(ctx context.Context, index string, body io.Reader) (*Response, error) {
	res, err := c.inner.Search(
		c.inner.Search.WithContext(ctx),
		c.inner.Search.WithIndex(index),
		c.inner.Search.WithBody(body),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return &Response{Status: res.StatusCode, Body: raw}, nil
}

// Ping verifies cluster reachability
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.inner.Ping(c.inner.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.New("es: ping returned " + res.Status())
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}
