package store

import (
	"context"

	perr "reqmatch/internal/platform/errors"
	"reqmatch/internal/platform/store/ch"
)

// newCHAdapter is called by openers.go to wrap an existing *ch.CH
// and return the store.Warehouse seam
func newCHAdapter(c *ch.CH) Warehouse {
	return &chAdapter{inner: c}
}

// chAdapter adapts *ch.CH to the store.Warehouse interface
type chAdapter struct {
	inner *ch.CH
}

var _ Warehouse = (*chAdapter)(nil)

func (a *chAdapter) Insert(ctx context.Context, table string, rows [][]any) error {
	return a.inner.Insert(ctx, table, rows)
}

// Ping verifies connectivity with clickhouse
func (a *chAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return perr.Internalf("store: nil warehouse adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *chAdapter) Close() error { return a.inner.Close() }
