package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/services"
)

func (m *Manager) processJob(ctx context.Context, logger *slog.Logger, job *queue.Job) error {
	stg, ok := m.stageForStatus(job.Status)
	if !ok {
		logger.Warn("no stage configured for status", logging.String("status", string(job.Status)))
		m.waitForJobOrShutdown(ctx)
		return nil
	}

	stageCtx := withStageContext(ctx, stg.name, job)
	stageLogger := m.stageLogger(logger, stg.name, job)

	if err := m.transitionToProcessing(stageCtx, stg.processingStatus, job); err != nil {
		stageLogger.Error("failed to transition job to processing", logging.Error(err))
		m.setLastError(err)
		return err
	}

	return m.executeStage(stageCtx, stageLogger, stg, job)
}

func (m *Manager) executeStage(ctx context.Context, stageLogger *slog.Logger, stg pipelineStage, job *queue.Job) error {
	stageStart := time.Now()
	stageLogger.Info("stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String("processing_status", string(stg.processingStatus)),
		logging.String("doc_name", strings.TrimSpace(job.DocName)),
		logging.String("source_file", strings.TrimSpace(job.SourcePath)),
	)

	if err := stg.handler.Prepare(ctx, job); err != nil {
		m.handleStageFailure(ctx, stg.name, job, err)
		m.setLastError(err)
		return err
	}
	if err := m.store.Update(ctx, job); err != nil {
		wrapped := fmt.Errorf("persist stage preparation: %w", err)
		stageLogger.Error("failed to persist stage preparation", logging.Error(wrapped))
		m.setLastError(wrapped)
		return wrapped
	}

	execErr := m.executeWithHeartbeat(ctx, stg.handler.Execute, job)
	if execErr != nil {
		if errors.Is(execErr, context.Canceled) {
			stageLogger.Debug("stage interrupted by shutdown")
			return execErr
		}
		m.handleStageFailure(ctx, stg.name, job, execErr)
		m.setLastError(execErr)
		return execErr
	}

	if job.Status == stg.processingStatus || job.Status == "" {
		job.Status = stg.doneStatus
	}
	job.LastHeartbeat = nil
	if job.Status == queue.StatusCompleted {
		job.ProgressStage = deriveStageLabel(queue.StatusCompleted)
		if job.ProgressPercent < 100 {
			job.ProgressPercent = 100
		}
		if strings.TrimSpace(job.ProgressMessage) == "" {
			job.ProgressMessage = deriveStageLabel(queue.StatusCompleted)
		}
	}
	if err := m.store.Update(ctx, job); err != nil {
		wrapped := fmt.Errorf("persist stage result: %w", err)
		stageLogger.Error("failed to persist stage result", logging.Error(wrapped))
		m.setLastError(wrapped)
		return wrapped
	}

	stageLogger.Info("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.String("next_status", string(job.Status)),
		logging.Duration("stage_duration", time.Since(stageStart)),
	)
	m.setLastJob(job)
	return nil
}

func (m *Manager) executeWithHeartbeat(ctx context.Context, execute func(context.Context, *queue.Job) error, job *queue.Job) error {
	hbCtx, hbCancel := context.WithCancel(ctx)
	var hbWG sync.WaitGroup
	hbWG.Add(1)
	go m.heartbeat.StartLoop(hbCtx, &hbWG, job.ID)

	execErr := execute(ctx, job)
	hbCancel()
	hbWG.Wait()
	return execErr
}

func (m *Manager) transitionToProcessing(ctx context.Context, processing queue.Status, job *queue.Job) error {
	if processing == "" {
		return errors.New("processing status must not be empty")
	}

	now := time.Now().UTC()
	job.Status = processing
	job.ProgressStage = deriveStageLabel(processing)
	job.ProgressMessage = fmt.Sprintf("%s started", deriveStageLabel(processing))
	job.ProgressPercent = 0
	job.ErrorMessage = ""
	job.LastHeartbeat = &now

	if err := m.store.Update(ctx, job); err != nil {
		return fmt.Errorf("persist processing transition: %w", err)
	}
	m.setLastJob(job)
	return nil
}

func (m *Manager) stageLogger(base *slog.Logger, stageName string, job *queue.Job) *slog.Logger {
	if base == nil {
		base = logging.NewNop()
	}
	return base.With(
		logging.String(logging.FieldStage, stageName),
		logging.Int64(logging.FieldJobID, job.ID),
	)
}

func withStageContext(ctx context.Context, stageName string, job *queue.Job) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if job != nil {
		ctx = services.WithJobID(ctx, job.ID)
	}
	if stageName != "" {
		ctx = services.WithStage(ctx, stageName)
	}
	return ctx
}

func deriveStageLabel(status queue.Status) string {
	if status == "" {
		return ""
	}
	parts := strings.Fields(strings.ReplaceAll(string(status), "_", " "))
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(strings.ToLower(part))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
