package stages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"clausecheck/internal/chunking"
	"clausecheck/internal/config"
	"clausecheck/internal/judge"
	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/requirements"
	"clausecheck/internal/retrieval"
	"clausecheck/internal/rules"
	"clausecheck/internal/services"
	"clausecheck/internal/stage"
)

// Checker runs the deterministic rule battery over the full document text and
// derives per-clause results from the retrieved candidates.
type Checker struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewChecker constructs the checking stage handler.
func NewChecker(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Checker {
	return &Checker{cfg: cfg, store: store, logger: logging.NewComponentLogger(logger, "checker")}
}

func (c *Checker) Prepare(ctx context.Context, job *queue.Job) error {
	if _, err := requireArtifact(c.cfg, job, "checking", candidatesFile); err != nil {
		return err
	}
	job.ProgressMessage = "Preparing clause checks"
	job.ProgressPercent = 0
	return nil
}

func (c *Checker) Execute(ctx context.Context, job *queue.Job) error {
	logger := logging.WithContext(ctx, c.logger)

	elements, err := chunking.LoadElements(job.SourcePath)
	if err != nil {
		return services.Wrap(services.ErrValidation, "checking", "load elements", "", err)
	}
	texts := make([]string, 0, len(elements))
	for _, element := range elements {
		texts = append(texts, element.Text)
	}
	fullText := strings.Join(texts, "\n")

	checkResults := rules.Run(fullText)
	if err := checkResults.Write(artifactPath(c.cfg, job, checksFile)); err != nil {
		return services.Wrap(services.ErrTransient, "checking", "write check results", "", err)
	}

	reqs, err := requirements.Load(c.cfg.Review.RequirementsPath)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "checking", "load requirements", "", err)
	}
	candidates, err := retrieval.Load(artifactPath(c.cfg, job, candidatesFile))
	if err != nil {
		return services.Wrap(services.ErrValidation, "checking", "load candidates", "", err)
	}

	clauseResults := buildClauseResults(reqs, candidates)
	if err := clauseResults.Write(artifactPath(c.cfg, job, resultsFile)); err != nil {
		return services.Wrap(services.ErrTransient, "checking", "write clause results", "", err)
	}

	job.ProgressPercent = 100
	job.ProgressMessage = fmt.Sprintf("Checked %d rules, %d clauses", len(checkResults), len(clauseResults))
	logger.Info("checking complete",
		logging.Int("rule_checks", len(checkResults)),
		logging.Int("clauses", len(clauseResults)),
	)
	return nil
}

// buildClauseResults evaluates each required clause against its retrieved
// candidate evidence. A clause passes when its expected text appears verbatim
// in the candidate evidence, the same containment test the judge later
// re-applies; with no candidates at all the verdict is uncertain rather than
// failed.
func buildClauseResults(reqs *requirements.Requirements, candidates retrieval.CandidateMap) judge.ResultMap {
	results := make(judge.ResultMap, len(reqs.Clauses))
	for _, clause := range reqs.Clauses {
		clauseCandidates := candidates[clause.ID]

		texts := make([]string, 0, len(clauseCandidates))
		for _, candidate := range clauseCandidates {
			texts = append(texts, candidate.Text)
		}
		actual := strings.Join(texts, "\n")

		result := judge.ClauseResult{
			Expected: clause.ExpectedText,
			Actual:   actual,
			Severity: clause.Severity,
		}
		switch {
		case len(clauseCandidates) == 0:
			result.Status = judge.StatusUncertain
		case clause.ExpectedText != "" && strings.Contains(actual, clause.ExpectedText):
			result.Status = judge.StatusPass
			result.Evidence = clauseCandidates[0].Text
		default:
			result.Status = judge.StatusFail
			result.Evidence = clauseCandidates[0].Text
		}
		results[clause.ID] = result
	}
	return results
}

func (c *Checker) HealthCheck(ctx context.Context) stage.Health {
	if _, err := requirements.Load(c.cfg.Review.RequirementsPath); err != nil {
		return stage.Unhealthy("checker", "requirements unavailable: "+err.Error())
	}
	return stage.Healthy("checker")
}
