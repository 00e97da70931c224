package workflow

import (
	"context"

	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/stage"
)

// StatusSummary represents lightweight workflow diagnostics.
type StatusSummary struct {
	Running     bool
	LastError   string
	LastJob     *queue.Job
	Queue       queue.HealthSummary
	StageHealth map[string]stage.Health
}

// Status returns the latest workflow information.
func (m *Manager) Status(ctx context.Context) StatusSummary {
	m.mu.RLock()
	running := m.running
	lastErr := m.lastErr
	lastJob := m.lastJob
	stages := make([]pipelineStage, len(m.stages))
	copy(stages, m.stages)
	m.mu.RUnlock()

	summary := StatusSummary{Running: running}

	health, err := m.store.Health(ctx)
	if err != nil {
		m.logger.Warn("failed to read queue health", logging.Error(err))
	} else {
		summary.Queue = health
	}

	summary.StageHealth = make(map[string]stage.Health, len(stages))
	for _, stg := range stages {
		if stg.handler == nil {
			continue
		}
		summary.StageHealth[stg.name] = stg.handler.HealthCheck(ctx)
	}

	if lastErr != nil {
		summary.LastError = lastErr.Error()
	}
	if lastJob != nil {
		jobCopy := *lastJob
		summary.LastJob = &jobCopy
	}
	return summary
}

func (m *Manager) setLastError(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

func (m *Manager) setLastJob(job *queue.Job) {
	m.mu.Lock()
	if job != nil {
		jobCopy := *job
		m.lastJob = &jobCopy
	} else {
		m.lastJob = nil
	}
	m.mu.Unlock()
}
