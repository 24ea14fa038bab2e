// Package store provides a unified interface to optional storage backends
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reqmatch/internal/platform/logger"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// Search is the search index seam, nil when disabled
	Search Searcher

	// Cache is the TTL key-value seam, nil when disabled
	Cache KV

	// Warehouse is the clickhouse seam for run analytics, nil when disabled
	Warehouse Warehouse
}

// SearchHit is a single document returned by the search index
type SearchHit struct {
	Source json.RawMessage
	Score  float64
}

// SearchResult is the decoded outcome of one search call
type SearchResult struct {
	TookMS int64
	Hits   []SearchHit
}

// Searcher is the read-only seam matching engines use against the index.
// Implementations classify failures via platform/errors so callers can tell
// transient from fatal
type Searcher interface {
	Search(ctx context.Context, index string, body []byte) (SearchResult, error)
}

// KV is a tiny seam for TTL-scoped cache entries
// Get returns ok=false on a clean miss; errors are reserved for backend failures
type KV interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	SetTTL(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// Warehouse is a tiny seam for columnar appends and queries
type Warehouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	if cfg.ES.Enabled {
		esClient, err := openES(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.Search = esClient
	}

	if cfg.RDS.Enabled {
		kv, err := openRedis(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.Cache = kv
	}

	if cfg.CH.Enabled {
		chClient, err := openCH(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.Warehouse = chClient
	}

	return s, nil
}

// Guard verifies all configured seams the Store knows about
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.Search != nil {
		if p, ok := any(s.Search).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("search: %w", err))
			}
		}
	}
	if s.Cache != nil {
		if p, ok := any(s.Cache).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("cache: %w", err))
			}
		}
	}
	if s.Warehouse != nil {
		if p, ok := any(s.Warehouse).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("warehouse: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends gracefully
// nil backends are ignored
func (s *Store) Close(ctx context.Context) error {
	var errs []error

	if s.Warehouse != nil {
		if e := s.Warehouse.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	if c, ok := s.Cache.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	if c, ok := s.Search.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}

	return errors.Join(errs...)
}
