package queue

import (
	"context"
	"fmt"
	"time"
)

func rollbackCase() (string, []any) {
	caseExpr := `CASE status`
	args := make([]any, 0, len(stageRollbackTransitions)*2)
	for _, tr := range stageRollbackTransitions {
		caseExpr += ` WHEN ? THEN ?`
		args = append(args, tr.from, tr.to)
	}
	caseExpr += ` ELSE status END`
	return caseExpr, args
}

func processingPlaceholderArgs() (string, []any) {
	args := make([]any, 0, len(stageRollbackTransitions))
	for _, tr := range stageRollbackTransitions {
		args = append(args, tr.from)
	}
	return makePlaceholders(len(args)), args
}

// ResetStuckProcessing returns jobs stuck mid-stage back to the start of
// their current stage. Used on daemon startup after an unclean shutdown.
func (s *Store) ResetStuckProcessing(ctx context.Context) (int64, error) {
	caseExpr, caseArgs := rollbackCase()
	inExpr, inArgs := processingPlaceholderArgs()

	args := append(caseArgs, time.Now().UTC().Format(time.RFC3339Nano))
	args = append(args, inArgs...)

	res, err := s.execWithRetry(
		ctx,
		`UPDATE queue_items
         SET status = `+caseExpr+`,
             progress_stage = 'Reset from stuck processing',
             progress_percent = 0, progress_message = NULL, last_heartbeat = NULL, updated_at = ?
         WHERE status IN (`+inExpr+`)`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("reset stuck jobs: %w", err)
	}
	return res.RowsAffected()
}

// UpdateHeartbeat updates the last heartbeat timestamp for an in-flight job.
func (s *Store) UpdateHeartbeat(ctx context.Context, id int64) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE queue_items SET last_heartbeat = ?, updated_at = ? WHERE id = ?`,
		now,
		now,
		id,
	); err != nil {
		return fmt.Errorf("update heartbeat: %w", err)
	}
	return nil
}

// ReclaimStaleProcessing returns jobs stuck mid-stage back to the start of
// their current stage when heartbeats expire.
func (s *Store) ReclaimStaleProcessing(ctx context.Context, cutoff time.Time) (int64, error) {
	caseExpr, caseArgs := rollbackCase()
	inExpr, inArgs := processingPlaceholderArgs()

	args := append(caseArgs, time.Now().UTC().Format(time.RFC3339Nano))
	args = append(args, inArgs...)
	args = append(args, cutoff.UTC().Format(time.RFC3339Nano))

	res, err := s.execWithRetry(
		ctx,
		`UPDATE queue_items
         SET status = `+caseExpr+`,
             progress_stage = 'Reclaimed from stale processing',
             progress_percent = 0, progress_message = NULL, last_heartbeat = NULL, updated_at = ?
         WHERE status IN (`+inExpr+`) AND last_heartbeat IS NOT NULL AND last_heartbeat < ?`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("reclaim stale jobs: %w", err)
	}
	return res.RowsAffected()
}

// RetryFailed moves failed jobs back to pending for reprocessing. With no ids
// every failed job is retried.
func (s *Store) RetryFailed(ctx context.Context, ids ...int64) (int64, error) {
	if len(ids) == 0 {
		res, err := s.execWithRetry(
			ctx,
			`UPDATE queue_items
            SET status = ?, progress_stage = 'Retry requested', progress_percent = 0,
                progress_message = NULL, error_message = NULL, updated_at = ?
            WHERE status = ?`,
			StatusPending,
			time.Now().UTC().Format(time.RFC3339Nano),
			StatusFailed,
		)
		if err != nil {
			return 0, fmt.Errorf("retry failed jobs: %w", err)
		}
		return res.RowsAffected()
	}

	args := make([]any, 0, len(ids)+3)
	args = append(args, StatusPending, time.Now().UTC().Format(time.RFC3339Nano))
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, StatusFailed)
	res, err := s.execWithRetry(
		ctx,
		`UPDATE queue_items
        SET status = ?, progress_stage = 'Retry requested', progress_percent = 0,
            progress_message = NULL, error_message = NULL, updated_at = ?
        WHERE id IN (`+makePlaceholders(len(ids))+`) AND status = ?`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("retry selected jobs: %w", err)
	}
	return res.RowsAffected()
}

// FailProcessing marks every mid-stage job as failed with the given reason.
// Called when the daemon stops so interrupted jobs are visible as such.
func (s *Store) FailProcessing(ctx context.Context, reason string) (int64, error) {
	inExpr, inArgs := processingPlaceholderArgs()

	args := make([]any, 0, len(inArgs)+3)
	args = append(args, StatusFailed, reason, time.Now().UTC().Format(time.RFC3339Nano))
	args = append(args, inArgs...)

	res, err := s.execWithRetry(
		ctx,
		`UPDATE queue_items
         SET status = ?, error_message = ?, last_heartbeat = NULL, updated_at = ?
         WHERE status IN (`+inExpr+`)`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("fail processing jobs: %w", err)
	}
	return res.RowsAffected()
}
