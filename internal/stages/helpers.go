package stages

import (
	"os"
	"path/filepath"

	"clausecheck/internal/config"
	"clausecheck/internal/queue"
	"clausecheck/internal/services"
)

const (
	parentChunksFile = "parent_chunks.json"
	childChunksFile  = "child_chunks.json"
	candidatesFile   = "candidates.json"
	checksFile       = "checks.json"
	resultsFile      = "results.json"
	judgedFile       = "judged.json"
	reportFile       = "report.txt"
	issuesJSONFile   = "issues.json"
	issuesCSVFile    = "issues.csv"
)

func artifactPath(cfg *config.Config, job *queue.Job, name string) string {
	return filepath.Join(cfg.JobDir(job.ID), name)
}

func ensureJobDir(cfg *config.Config, job *queue.Job, stageName string) error {
	dir := cfg.JobDir(job.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, stageName, "ensure staging directory",
			"cannot create job staging directory", err)
	}
	return nil
}

func requireArtifact(cfg *config.Config, job *queue.Job, stageName, name string) (string, error) {
	path := artifactPath(cfg, job, name)
	if _, err := os.Stat(path); err != nil {
		return "", services.Wrap(services.ErrValidation, stageName, "locate input artifact",
			"missing "+name+"; rerun the preceding stage", err)
	}
	return path, nil
}
