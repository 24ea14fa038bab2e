package repo

import (
	"context"
	"encoding/json"
	"time"

	perr "reqmatch/internal/platform/errors"
	"reqmatch/internal/platform/store"
	"reqmatch/internal/services/matching/domain"
)

// cacheKeyPrefix namespaces match entries in the shared cache
const cacheKeyPrefix = "match:"

// Cache memoizes ranked result lists by fingerprint with TTL expiry
// entries are immutable blobs; there is no invalidation besides expiry
type Cache struct {
	kv store.KV
}

var _ domain.CachePort = (*Cache)(nil)

// NewCache wraps the store KV seam
func NewCache(kv store.KV) *Cache {
	return &Cache{kv: kv}
}

// Get implements domain.CachePort
func (c *Cache) Get(ctx context.Context, fingerprint string) ([]domain.MatchResult, bool, error) {
	b, ok, err := c.kv.Get(ctx, cacheKeyPrefix+fingerprint)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var rs []domain.MatchResult
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeCache, "decode cached results for %s", fingerprint)
	}
	return rs, true, nil
}

// Set implements domain.CachePort
func (c *Cache) Set(ctx context.Context, fingerprint string, results []domain.MatchResult, ttl time.Duration) error {
	b, err := json.Marshal(results)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeCache, "encode results for %s", fingerprint)
	}
	return c.kv.SetTTL(ctx, cacheKeyPrefix+fingerprint, b, ttl)
}
