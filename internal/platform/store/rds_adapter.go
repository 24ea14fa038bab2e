package store

import (
	"context"
	"time"

	perr "reqmatch/internal/platform/errors"
	"reqmatch/internal/platform/store/rds"
)

// newRDSAdapter is called by openers.go to wrap an existing *rds.Client
// and return the store.KV seam
func newRDSAdapter(c *rds.Client) KV {
	return &rdsAdapter{inner: c}
}

// rdsAdapter adapts *rds.Client to the store.KV interface.
// Backend failures are wrapped with ErrorCodeCache so callers can treat them
// as soft (proceed as a miss) without string matching
type rdsAdapter struct {
	inner *rds.Client
}

var _ KV = (*rdsAdapter)(nil)

func (a *rdsAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, ok, err := a.inner.Get(ctx, key)
	if err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeCache, "cache get %s", key)
	}
	return b, ok, nil
}

func (a *rdsAdapter) SetTTL(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if err := a.inner.SetTTL(ctx, key, val, ttl); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeCache, "cache set %s", key)
	}
	return nil
}

// Ping verifies connectivity with redis
func (a *rdsAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return perr.Internalf("store: nil cache adapter")
	}
	return a.inner.Ping(ctx)
}

// Close closes the underlying pool
func (a *rdsAdapter) Close() error { return a.inner.Close() }
