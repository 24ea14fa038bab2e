package domain

import (
	"context"
	"time"
)

// MatcherPort runs one full match: query, execute, score, rank, cache
type MatcherPort interface {
	Match(ctx context.Context, in RequisitionMatchInput, opts MatchOptions) ([]MatchResult, error)
}

// ExecutorPort runs one built query against the search index
// read-only and safe to call repeatedly; errors carry retryability semantics
type ExecutorPort interface {
	Execute(ctx context.Context, body []byte) (CandidatePage, error)
}

// CachePort memoizes ranked results by fingerprint
// Get returns ok=false on a clean miss; errors are backend failures the caller
// may absorb as a miss
type CachePort interface {
	Get(ctx context.Context, fingerprint string) ([]MatchResult, bool, error)
	Set(ctx context.Context, fingerprint string, results []MatchResult, ttl time.Duration) error
}
