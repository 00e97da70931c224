package workflow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
)

// Start begins background processing.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return errors.New("workflow already running")
	}
	if len(m.stages) == 0 {
		m.mu.Unlock()
		return errors.New("workflow stages not configured")
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true
	m.wg.Add(1)
	m.mu.Unlock()

	go m.run(runCtx)
	return nil
}

// Stop terminates background processing and waits for completion.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	m.running = false
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
}

func (m *Manager) run(ctx context.Context) {
	defer m.wg.Done()
	logger := m.runnerLogger()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := m.heartbeat.ReclaimStaleJobs(ctx, logger); err != nil {
			logger.Warn("reclaim stale processing failed; stuck jobs may remain",
				logging.Error(err),
				logging.String(logging.FieldEventType, "heartbeat_reclaim_failed"),
			)
		}

		job, err := m.store.NextReady(ctx)
		if err != nil {
			m.handleNextJobError(ctx, logger, err)
			continue
		}
		if job == nil {
			m.waitForJobOrShutdown(ctx)
			continue
		}

		if err := m.processJob(ctx, logger, job); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
		}
	}
}

func (m *Manager) runnerLogger() *slog.Logger {
	if m.logger == nil {
		return logging.NewNop()
	}
	return m.logger.With(logging.String(logging.FieldComponent, "workflow-runner"))
}

func (m *Manager) handleNextJobError(ctx context.Context, logger *slog.Logger, err error) {
	m.setLastError(err)
	logger.Error("failed to fetch next queue job",
		logging.Error(err),
		logging.String(logging.FieldEventType, "queue_fetch_failed"),
	)
	select {
	case <-ctx.Done():
		return
	case <-time.After(m.pollInterval):
	}
}

func (m *Manager) waitForJobOrShutdown(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(m.pollInterval):
	}
}

// FailInFlight marks every mid-stage job as failed. Called during daemon
// shutdown so interrupted work is visible.
func (m *Manager) FailInFlight(ctx context.Context) {
	count, err := m.store.FailProcessing(ctx, queue.DaemonStopReason)
	if err != nil {
		m.runnerLogger().Warn("failed to mark in-flight jobs", logging.Error(err))
		return
	}
	if count > 0 {
		m.runnerLogger().Info("marked in-flight jobs as failed", logging.Int64("count", count))
	}
}
