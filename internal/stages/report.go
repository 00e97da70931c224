package stages

import (
	"context"
	"fmt"
	"log/slog"

	"clausecheck/internal/config"
	"clausecheck/internal/judge"
	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/report"
	"clausecheck/internal/rules"
	"clausecheck/internal/services"
	"clausecheck/internal/stage"
)

// Reporter renders the final review report and issue exports.
type Reporter struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewReporter constructs the reporting stage handler.
func NewReporter(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Reporter {
	return &Reporter{cfg: cfg, store: store, logger: logging.NewComponentLogger(logger, "reporter")}
}

func (r *Reporter) Prepare(ctx context.Context, job *queue.Job) error {
	if _, err := requireArtifact(r.cfg, job, "reporting", judgedFile); err != nil {
		return err
	}
	if _, err := requireArtifact(r.cfg, job, "reporting", checksFile); err != nil {
		return err
	}
	job.ProgressMessage = "Preparing report"
	job.ProgressPercent = 0
	return nil
}

func (r *Reporter) Execute(ctx context.Context, job *queue.Job) error {
	logger := logging.WithContext(ctx, r.logger)

	judged, err := judge.Load(artifactPath(r.cfg, job, judgedFile))
	if err != nil {
		return services.Wrap(services.ErrValidation, "reporting", "load judged results", "", err)
	}
	checks, err := rules.Load(artifactPath(r.cfg, job, checksFile))
	if err != nil {
		return services.Wrap(services.ErrValidation, "reporting", "load check results", "", err)
	}

	issues := report.BuildIssueRegister(judged)
	rendered := report.Render(judged, checks)

	reportPath := artifactPath(r.cfg, job, reportFile)
	if err := report.WriteReport(rendered, reportPath); err != nil {
		return services.Wrap(services.ErrTransient, "reporting", "write report", "", err)
	}
	if err := report.WriteIssuesJSON(issues, artifactPath(r.cfg, job, issuesJSONFile)); err != nil {
		return services.Wrap(services.ErrTransient, "reporting", "write issues json", "", err)
	}
	if err := report.WriteIssuesCSV(issues, artifactPath(r.cfg, job, issuesCSVFile)); err != nil {
		return services.Wrap(services.ErrTransient, "reporting", "write issues csv", "", err)
	}

	job.ReportPath = reportPath
	job.ProgressPercent = 100
	job.ProgressMessage = fmt.Sprintf("Report written with %d issues", len(issues))
	logger.Info("reporting complete",
		logging.Int("issues", len(issues)),
		logging.String("report_file", reportPath),
	)
	return nil
}

func (r *Reporter) HealthCheck(ctx context.Context) stage.Health {
	return stage.Healthy("reporter")
}
