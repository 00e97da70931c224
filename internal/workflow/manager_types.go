package workflow

import (
	"clausecheck/internal/queue"
	"clausecheck/internal/stage"
)

// StageSet bundles the concrete workflow handlers the manager orchestrates.
type StageSet struct {
	Chunker   stage.Handler
	Retriever stage.Handler
	Checker   stage.Handler
	Judge     stage.Handler
	Reporter  stage.Handler
}

type pipelineStage struct {
	name             string
	handler          stage.Handler
	startStatus      queue.Status
	processingStatus queue.Status
	doneStatus       queue.Status
}

// ConfigureStages registers the concrete stage handlers the workflow will run.
func (m *Manager) ConfigureStages(set StageSet) {
	var stages []pipelineStage

	if set.Chunker != nil {
		stages = append(stages, pipelineStage{
			name:             "chunker",
			handler:          set.Chunker,
			startStatus:      queue.StatusPending,
			processingStatus: queue.StatusChunking,
			doneStatus:       queue.StatusChunked,
		})
	}
	if set.Retriever != nil {
		stages = append(stages, pipelineStage{
			name:             "retriever",
			handler:          set.Retriever,
			startStatus:      queue.StatusChunked,
			processingStatus: queue.StatusRetrieving,
			doneStatus:       queue.StatusRetrieved,
		})
	}
	if set.Checker != nil {
		stages = append(stages, pipelineStage{
			name:             "checker",
			handler:          set.Checker,
			startStatus:      queue.StatusRetrieved,
			processingStatus: queue.StatusChecking,
			doneStatus:       queue.StatusChecked,
		})
	}
	if set.Judge != nil {
		stages = append(stages, pipelineStage{
			name:             "judge",
			handler:          set.Judge,
			startStatus:      queue.StatusChecked,
			processingStatus: queue.StatusJudging,
			doneStatus:       queue.StatusJudged,
		})
	}
	if set.Reporter != nil {
		stages = append(stages, pipelineStage{
			name:             "reporter",
			handler:          set.Reporter,
			startStatus:      queue.StatusJudged,
			processingStatus: queue.StatusReporting,
			doneStatus:       queue.StatusCompleted,
		})
	}

	byStart := make(map[queue.Status]pipelineStage, len(stages))
	for _, stg := range stages {
		byStart[stg.startStatus] = stg
	}

	m.mu.Lock()
	m.stages = stages
	m.stageByStart = byStart
	m.mu.Unlock()
}

func (m *Manager) stageForStatus(status queue.Status) (pipelineStage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stg, ok := m.stageByStart[status]
	return stg, ok
}
