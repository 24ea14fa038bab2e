package store

import (
	"context"
	"fmt"
	"time"

	chx "reqmatch/internal/platform/store/ch"
	"reqmatch/internal/platform/store/es"
	"reqmatch/internal/platform/store/rds"
)

// openES opens the search index client and wraps it with our adapter
func openES(ctx context.Context, cfg Config, s *Store) (Searcher, error) {
	c, err := es.Open(es.Config{
		Addresses: cfg.ES.Addresses,
		Username:  cfg.ES.Username,
		Password:  cfg.ES.Password,
	})
	if err != nil {
		return nil, err
	}

	// Connection guardrails: ping with retry/backoff before publishing
	maxAttempts := cfg.ES.ConnectRetries
	if maxAttempts <= 0 {
		maxAttempts = 20
	}
	pingTimeout := cfg.ES.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = c.Ping(toCtx)
		cancel()

		if lastErr == nil {
			a := newESAdapter(c) // publish the adapter only once the index answers
			s.Search = a
			return a, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < backoffCeiling {
			backoff *= 2
			if backoff > backoffCeiling {
				backoff = backoffCeiling
			}
		}
	}

	return nil, fmt.Errorf("search index ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// openRedis opens the cache client; go-redis pools lazily so no ping loop here,
// readiness is checked by Store.Guard
func openRedis(_ context.Context, cfg Config, _ *Store) (KV, error) {
	c, err := rds.Open(rds.Config{
		Addr:     cfg.RDS.Addr,
		Password: cfg.RDS.Password,
		DB:       cfg.RDS.DB,
	})
	if err != nil {
		return nil, err
	}
	return newRDSAdapter(c), nil
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Warehouse, error) {
	c, err := chx.Open(ctx, chx.Config{Addr: cfg.CH.Addr, DB: cfg.CH.DB, Role: cfg.CH.Role})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
