package stages

import (
	"context"
	"fmt"
	"log/slog"

	"clausecheck/internal/chunking"
	"clausecheck/internal/config"
	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/requirements"
	"clausecheck/internal/retrieval"
	"clausecheck/internal/services"
	"clausecheck/internal/stage"
)

// Retriever ranks child chunks against the clause locator patterns.
type Retriever struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewRetriever constructs the retrieval stage handler.
func NewRetriever(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Retriever {
	return &Retriever{cfg: cfg, store: store, logger: logging.NewComponentLogger(logger, "retriever")}
}

func (r *Retriever) Prepare(ctx context.Context, job *queue.Job) error {
	if _, err := requireArtifact(r.cfg, job, "retrieving", childChunksFile); err != nil {
		return err
	}
	job.ProgressMessage = "Preparing candidate retrieval"
	job.ProgressPercent = 0
	return nil
}

func (r *Retriever) Execute(ctx context.Context, job *queue.Job) error {
	logger := logging.WithContext(ctx, r.logger)

	reqs, err := requirements.Load(r.cfg.Review.RequirementsPath)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "retrieving", "load requirements",
			"requirements file unreadable or malformed", err)
	}
	patterns, err := requirements.CompilePatterns(reqs)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "retrieving", "compile locators", "", err)
	}

	children, err := chunking.LoadChildren(artifactPath(r.cfg, job, childChunksFile))
	if err != nil {
		return services.Wrap(services.ErrValidation, "retrieving", "load child chunks", "", err)
	}

	candidates := retrieval.SelectCandidates(children, patterns, r.cfg.Review.TopK)
	if err := candidates.Write(artifactPath(r.cfg, job, candidatesFile)); err != nil {
		return services.Wrap(services.ErrTransient, "retrieving", "write candidates", "", err)
	}

	job.ProgressPercent = 100
	job.ProgressMessage = fmt.Sprintf("Retrieved candidates for %d clauses", len(candidates))
	logger.Info("retrieval complete",
		logging.Int("clauses", len(reqs.Clauses)),
		logging.Int("children", len(children)),
	)
	return nil
}

func (r *Retriever) HealthCheck(ctx context.Context) stage.Health {
	reqs, err := requirements.Load(r.cfg.Review.RequirementsPath)
	if err != nil {
		return stage.Unhealthy("retriever", "requirements unavailable: "+err.Error())
	}
	if _, err := requirements.CompilePatterns(reqs); err != nil {
		return stage.Unhealthy("retriever", "locator compile failed: "+err.Error())
	}
	return stage.Healthy("retriever")
}
