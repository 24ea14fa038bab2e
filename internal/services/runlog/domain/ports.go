package domain

import "context"

// RecorderPort appends match runs to the warehouse
// callers treat failures as soft: log and move on, never fail the match
type RecorderPort interface {
	Record(ctx context.Context, runs ...Run) error
}
