package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Job describes a review job in a transport-friendly format.
type Job struct {
	ID           int64       `json:"id"`
	DocName      string      `json:"docName"`
	SourcePath   string      `json:"sourcePath"`
	Status       string      `json:"status"`
	Progress     JobProgress `json:"progress"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
	ReportPath   string      `json:"reportPath,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
	UpdatedAt    string      `json:"updatedAt,omitempty"`
}

// JobProgress captures stage progress information for a review job.
type JobProgress struct {
	Stage   string  `json:"stage"`
	Percent float64 `json:"percent"`
	Message string  `json:"message"`
}

// WorkflowStatus summarizes workflow execution state.
type WorkflowStatus struct {
	Running     bool          `json:"running"`
	Queue       QueueCounts   `json:"queue"`
	LastError   string        `json:"lastError,omitempty"`
	LastJob     *Job          `json:"lastJob,omitempty"`
	StageHealth []StageHealth `json:"stageHealth"`
}

// QueueCounts aggregates job counts per lifecycle bucket.
type QueueCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Failed     int `json:"failed"`
	Review     int `json:"review"`
	Completed  int `json:"completed"`
}

// StageHealth mirrors readiness reporting for workflow stages.
type StageHealth struct {
	Name   string `json:"name"`
	Ready  bool   `json:"ready"`
	Detail string `json:"detail,omitempty"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool           `json:"running"`
	PID          int            `json:"pid"`
	QueueDBPath  string         `json:"queueDbPath"`
	LockFilePath string         `json:"lockFilePath"`
	Workflow     WorkflowStatus `json:"workflow"`
}

// JobListResponse wraps a collection of jobs for API responses.
type JobListResponse struct {
	Jobs []Job `json:"jobs"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job Job `json:"job"`
}
