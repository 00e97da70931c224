package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// NewJob enqueues a review job for an uploaded elements document.
func (s *Store) NewJob(ctx context.Context, sourcePath string) (*Job, error) {
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO queue_items (
            source_path, doc_name, status, created_at, updated_at,
            progress_stage, progress_percent, progress_message
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sourcePath,
		inferDocNameFromPath(sourcePath),
		StatusPending,
		timestamp,
		timestamp,
		nil,
		0.0,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a job by identifier. A missing job returns (nil, nil).
func (s *Store) GetByID(ctx context.Context, id int64) (*Job, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM queue_items WHERE id = ?`, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// FindBySourcePath returns the most recent job for the given source document,
// if any.
func (s *Store) FindBySourcePath(ctx context.Context, sourcePath string) (*Job, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+jobColumns+` FROM queue_items WHERE source_path = ? ORDER BY id DESC LIMIT 1`,
		sourcePath,
	)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job by source: %w", err)
	}
	return job, nil
}

// Update persists the mutable fields of a job.
func (s *Store) Update(ctx context.Context, job *Job) error {
	if job == nil {
		return errors.New("nil job")
	}
	if !job.Status.IsValid() {
		return fmt.Errorf("invalid status %q", job.Status)
	}

	now := time.Now().UTC()
	job.UpdatedAt = now

	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE queue_items SET
            source_path = ?, doc_name = ?, status = ?, error_message = ?,
            progress_stage = ?, progress_percent = ?, progress_message = ?,
            report_path = ?, last_heartbeat = ?, updated_at = ?
        WHERE id = ?`,
		job.SourcePath,
		job.DocName,
		job.Status,
		nullableString(job.ErrorMessage),
		nullableString(job.ProgressStage),
		job.ProgressPercent,
		nullableString(job.ProgressMessage),
		job.ReportPath,
		nullableTime(job.LastHeartbeat),
		now.Format(time.RFC3339Nano),
		job.ID,
	); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// List returns jobs filtered by status; with no statuses it returns everything
// in insertion order.
func (s *Store) List(ctx context.Context, statuses ...Status) ([]*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM queue_items`
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		query += ` WHERE status IN (` + makePlaceholders(len(statuses)) + `)`
		for _, status := range statuses {
			args = append(args, status)
		}
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}

// NextReady claims the oldest job whose status allows the pipeline to make
// progress. Returns (nil, nil) when the queue has no runnable work.
func (s *Store) NextReady(ctx context.Context) (*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM queue_items WHERE status IN (` +
		makePlaceholders(len(resumableStatuses)) + `) ORDER BY id LIMIT 1`
	args := make([]any, 0, len(resumableStatuses))
	for _, status := range resumableStatuses {
		args = append(args, status)
	}

	row := s.db.QueryRowContext(ctx, query, args...)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("next ready job: %w", err)
	}
	return job, nil
}

// Health summarizes job counts per lifecycle bucket.
func (s *Store) Health(ctx context.Context) (HealthSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM queue_items GROUP BY status`)
	if err != nil {
		return HealthSummary{}, fmt.Errorf("queue health: %w", err)
	}
	defer rows.Close()

	var summary HealthSummary
	for rows.Next() {
		var (
			statusStr string
			count     int
		)
		if err := rows.Scan(&statusStr, &count); err != nil {
			return HealthSummary{}, fmt.Errorf("scan health row: %w", err)
		}
		summary.Total += count
		switch status := Status(statusStr); {
		case status == StatusPending:
			summary.Pending += count
		case status.IsProcessing():
			summary.Processing += count
		case status == StatusFailed:
			summary.Failed += count
		case status == StatusReview:
			summary.Review += count
		case status == StatusCompleted:
			summary.Completed += count
		}
	}
	if err := rows.Err(); err != nil {
		return HealthSummary{}, fmt.Errorf("iterate health rows: %w", err)
	}
	return summary, nil
}

// Remove deletes the given jobs outright.
func (s *Store) Remove(ctx context.Context, ids ...int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	res, err := s.execWithRetry(
		ctx,
		`DELETE FROM queue_items WHERE id IN (`+makePlaceholders(len(ids))+`)`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("remove jobs: %w", err)
	}
	return res.RowsAffected()
}

// Clear deletes every job from the queue.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM queue_items`)
	if err != nil {
		return 0, fmt.Errorf("clear queue: %w", err)
	}
	return res.RowsAffected()
}
