package stages

import (
	"context"
	"fmt"
	"log/slog"

	"clausecheck/internal/config"
	"clausecheck/internal/judge"
	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/services"
	"clausecheck/internal/stage"
)

// Judge reconciles clause verdicts against their evidence.
type Judge struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewJudge constructs the judging stage handler.
func NewJudge(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Judge {
	return &Judge{cfg: cfg, store: store, logger: logging.NewComponentLogger(logger, "judge")}
}

func (j *Judge) Prepare(ctx context.Context, job *queue.Job) error {
	if _, err := requireArtifact(j.cfg, job, "judging", resultsFile); err != nil {
		return err
	}
	job.ProgressMessage = "Preparing verdict reconciliation"
	job.ProgressPercent = 0
	return nil
}

func (j *Judge) Execute(ctx context.Context, job *queue.Job) error {
	logger := logging.WithContext(ctx, j.logger)

	results, err := judge.Load(artifactPath(j.cfg, job, resultsFile))
	if err != nil {
		return services.Wrap(services.ErrValidation, "judging", "load clause results", "", err)
	}

	judged := judge.Reconcile(results)
	if err := judged.Write(artifactPath(j.cfg, job, judgedFile)); err != nil {
		return services.Wrap(services.ErrTransient, "judging", "write judged results", "", err)
	}

	demoted := 0
	for _, result := range judged {
		if result.JudgeStatus != result.Status {
			demoted++
		}
	}

	job.ProgressPercent = 100
	job.ProgressMessage = fmt.Sprintf("Judged %d clauses", len(judged))
	logger.Info("judging complete",
		logging.Int("clauses", len(judged)),
		logging.Int("revised", demoted),
	)
	return nil
}

func (j *Judge) HealthCheck(ctx context.Context) stage.Health {
	return stage.Healthy("judge")
}
