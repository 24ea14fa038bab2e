// Package repo implements the runlog warehouse writer
package repo

import (
	"context"

	"reqmatch/internal/platform/store"
	"reqmatch/internal/services/runlog/domain"
)

// CH appends run rows to the analytics warehouse
type CH struct {
	wh    store.Warehouse
	table string
}

// NewCH constructs the warehouse repo for the given table
func NewCH(wh store.Warehouse, table string) *CH {
	return &CH{wh: wh, table: table}
}

// WriteRuns flattens runs into one batched insert
// column order matches the match_runs schema
func (r *CH) WriteRuns(ctx context.Context, runs []domain.Run) error {
	if len(runs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(runs))
	for _, x := range runs {
		rows = append(rows, []any{
			x.RunID,
			x.RequisitionID,
			x.Fingerprint,
			int64(x.CandidateCount),
			int64(x.ResultCount),
			x.TookMS,
			x.CacheHit,
			x.ErrorClass,
			x.StartedAt,
			x.DurationMS,
		})
	}
	return r.wh.Insert(ctx, r.table, rows)
}
