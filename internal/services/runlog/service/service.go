// Package service provides the runlog service implementation
package service

import (
	"context"

	"github.com/google/uuid"

	"reqmatch/internal/services/runlog/domain"
	"reqmatch/internal/services/runlog/repo"
)

// Service implements domain.RecorderPort against the CH repo
type Service struct {
	Storage *repo.CH
}

var _ domain.RecorderPort = (*Service)(nil)

// New constructs a new runlog service with a required CH repo
func New(storage *repo.CH) *Service {
	return &Service{Storage: storage}
}

// Record implements domain.RecorderPort
// runs without an id get one assigned so warehouse rows stay addressable
func (s *Service) Record(ctx context.Context, runs ...domain.Run) error {
	if len(runs) == 0 {
		return nil
	}
	xs := make([]domain.Run, len(runs))
	copy(xs, runs)
	for i := range xs {
		if xs[i].RunID == "" {
			xs[i].RunID = uuid.NewString()
		}
	}
	return s.Storage.WriteRuns(ctx, xs)
}
