package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/services"
)

func (m *Manager) handleStageFailure(ctx context.Context, stageName string, job *queue.Job, stageErr error) {
	base := m.logger
	if base == nil {
		base = logging.NewNop()
	}
	logger := m.stageLogger(base, stageName, job).With(logging.String(logging.FieldComponent, "workflow-manager"))

	resolved := services.FailureStatus(stageErr)
	message := m.classifyStageFailure(stageName, stageErr)

	job.Status = resolved
	job.ErrorMessage = message
	job.LastHeartbeat = nil

	logger.Error("stage failed",
		logging.String(logging.FieldEventType, "stage_failure"),
		logging.String("resolved_status", string(resolved)),
		logging.String("error_message", strings.TrimSpace(message)),
		logging.Error(stageErr),
	)

	if err := m.store.Update(ctx, job); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug("daemon shutting down, could not update stage failure")
		} else {
			logger.Error("failed to persist stage failure", logging.Error(err))
		}
	}

	m.setLastJob(job)
}

func (m *Manager) classifyStageFailure(stageName string, stageErr error) string {
	if stageErr == nil {
		return fmt.Sprintf("%s failed without error detail", stageName)
	}
	message := strings.TrimSpace(stageErr.Error())
	if message == "" {
		message = fmt.Sprintf("%s failed", stageName)
	}
	return message
}
