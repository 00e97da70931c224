package queue

import "time"

// Status represents the lifecycle of a review job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusChunking   Status = "chunking"
	StatusChunked    Status = "chunked"
	StatusRetrieving Status = "retrieving"
	StatusRetrieved  Status = "retrieved"
	StatusChecking   Status = "checking"
	StatusChecked    Status = "checked"
	StatusJudging    Status = "judging"
	StatusJudged     Status = "judged"
	StatusReporting  Status = "reporting"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusReview     Status = "review"
)

// DaemonStopReason is the error message set when jobs are failed due to daemon shutdown.
const DaemonStopReason = "Daemon stopped"

var allStatuses = []Status{
	StatusPending,
	StatusChunking,
	StatusChunked,
	StatusRetrieving,
	StatusRetrieved,
	StatusChecking,
	StatusChecked,
	StatusJudging,
	StatusJudged,
	StatusReporting,
	StatusCompleted,
	StatusFailed,
	StatusReview,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

var processingStatuses = map[Status]struct{}{
	StatusChunking:   {},
	StatusRetrieving: {},
	StatusChecking:   {},
	StatusJudging:    {},
	StatusReporting:  {},
}

// resumableStatuses are the states the workflow manager may claim work from.
var resumableStatuses = []Status{
	StatusPending,
	StatusChunked,
	StatusRetrieved,
	StatusChecked,
	StatusJudged,
}

type statusTransition struct {
	from Status
	to   Status
}

// stageRollbackTransitions return an interrupted job to the start of its
// current stage.
var stageRollbackTransitions = []statusTransition{
	{from: StatusChunking, to: StatusPending},
	{from: StatusRetrieving, to: StatusChunked},
	{from: StatusChecking, to: StatusRetrieved},
	{from: StatusJudging, to: StatusChecked},
	{from: StatusReporting, to: StatusJudged},
}

// IsValid reports whether the status is a known lifecycle state.
func (s Status) IsValid() bool {
	_, ok := statusSet[s]
	return ok
}

// IsProcessing reports whether the status marks a job as mid-stage.
func (s Status) IsProcessing() bool {
	_, ok := processingStatuses[s]
	return ok
}

// IsTerminal reports whether the job has finished its lifecycle.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusReview:
		return true
	}
	return false
}

// Job represents a review job persisted in SQLite.
type Job struct {
	ID              int64
	SourcePath      string
	DocName         string
	Status          Status
	ErrorMessage    string
	ProgressStage   string
	ProgressPercent float64
	ProgressMessage string
	ReportPath      string
	LastHeartbeat   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HealthSummary describes aggregated queue counts per key lifecycle states.
type HealthSummary struct {
	Total      int
	Pending    int
	Processing int
	Failed     int
	Review     int
	Completed  int
}
