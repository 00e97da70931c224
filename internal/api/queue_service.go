package api

import (
	"context"

	"clausecheck/internal/queue"
)

// QueueReader abstracts queue persistence interactions needed for API queries.
type QueueReader interface {
	List(ctx context.Context, statuses ...queue.Status) ([]*queue.Job, error)
	Health(ctx context.Context) (queue.HealthSummary, error)
	GetByID(ctx context.Context, id int64) (*queue.Job, error)
}

// QueueService exposes read-only queue operations returning API DTOs.
type QueueService struct {
	store QueueReader
}

// NewQueueService constructs a QueueService around the provided reader.
func NewQueueService(store QueueReader) *QueueService {
	if store == nil {
		return nil
	}
	return &QueueService{store: store}
}

// List returns jobs filtered by status.
func (s *QueueService) List(ctx context.Context, statuses ...queue.Status) ([]Job, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	jobs, err := s.store.List(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	return FromJobs(jobs), nil
}

// Counts returns aggregated queue counts.
func (s *QueueService) Counts(ctx context.Context) (QueueCounts, error) {
	if s == nil || s.store == nil {
		return QueueCounts{}, nil
	}
	summary, err := s.store.Health(ctx)
	if err != nil {
		return QueueCounts{}, err
	}
	return FromHealthSummary(summary), nil
}

// Describe fetches a single job.
func (s *QueueService) Describe(ctx context.Context, id int64) (*Job, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	job, err := s.store.GetByID(ctx, id)
	if err != nil || job == nil {
		return nil, err
	}
	dto := FromJob(job)
	return &dto, nil
}
