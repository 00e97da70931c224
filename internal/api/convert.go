package api

import (
	"sort"

	"clausecheck/internal/queue"
	"clausecheck/internal/workflow"
)

// FromJob converts a queue record to its API representation.
func FromJob(job *queue.Job) Job {
	if job == nil {
		return Job{}
	}

	dto := Job{
		ID:         job.ID,
		DocName:    job.DocName,
		SourcePath: job.SourcePath,
		Status:     string(job.Status),
		Progress: JobProgress{
			Stage:   job.ProgressStage,
			Percent: job.ProgressPercent,
			Message: job.ProgressMessage,
		},
		ErrorMessage: job.ErrorMessage,
		ReportPath:   job.ReportPath,
	}
	if !job.CreatedAt.IsZero() {
		dto.CreatedAt = job.CreatedAt.UTC().Format(dateTimeFormat)
	}
	if !job.UpdatedAt.IsZero() {
		dto.UpdatedAt = job.UpdatedAt.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromJobs converts a slice of queue records.
func FromJobs(jobs []*queue.Job) []Job {
	out := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, FromJob(job))
	}
	return out
}

// FromHealthSummary converts queue counts to the API shape.
func FromHealthSummary(summary queue.HealthSummary) QueueCounts {
	return QueueCounts{
		Total:      summary.Total,
		Pending:    summary.Pending,
		Processing: summary.Processing,
		Failed:     summary.Failed,
		Review:     summary.Review,
		Completed:  summary.Completed,
	}
}

// FromStatusSummary converts workflow diagnostics to the API shape.
func FromStatusSummary(summary workflow.StatusSummary) WorkflowStatus {
	status := WorkflowStatus{
		Running:   summary.Running,
		Queue:     FromHealthSummary(summary.Queue),
		LastError: summary.LastError,
	}
	if summary.LastJob != nil {
		job := FromJob(summary.LastJob)
		status.LastJob = &job
	}

	names := make([]string, 0, len(summary.StageHealth))
	for name := range summary.StageHealth {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		health := summary.StageHealth[name]
		status.StageHealth = append(status.StageHealth, StageHealth{
			Name:   health.Name,
			Ready:  health.Ready,
			Detail: health.Detail,
		})
	}
	return status
}
