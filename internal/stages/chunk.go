package stages

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"clausecheck/internal/chunking"
	"clausecheck/internal/config"
	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/services"
	"clausecheck/internal/stage"
)

// Chunker splits an uploaded elements document into parent and child chunks.
type Chunker struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewChunker constructs the chunking stage handler.
func NewChunker(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Chunker {
	return &Chunker{cfg: cfg, store: store, logger: logging.NewComponentLogger(logger, "chunker")}
}

func (c *Chunker) Prepare(ctx context.Context, job *queue.Job) error {
	logger := logging.WithContext(ctx, c.logger)
	if strings.TrimSpace(job.SourcePath) == "" {
		return services.Wrap(services.ErrValidation, "chunking", "validate inputs",
			"job has no source document", nil)
	}
	if _, err := os.Stat(job.SourcePath); err != nil {
		return services.Wrap(services.ErrNotFound, "chunking", "validate inputs",
			"source document missing from data directory", err)
	}
	if err := ensureJobDir(c.cfg, job, "chunking"); err != nil {
		return err
	}
	job.ProgressMessage = "Preparing document chunking"
	job.ProgressPercent = 0
	logger.Info("starting chunking preparation",
		logging.String("source_file", job.SourcePath),
	)
	return nil
}

func (c *Chunker) Execute(ctx context.Context, job *queue.Job) error {
	logger := logging.WithContext(ctx, c.logger)

	elements, err := chunking.LoadElements(job.SourcePath)
	if err != nil {
		return services.Wrap(services.ErrValidation, "chunking", "load elements",
			"elements document unreadable or malformed", err)
	}

	grouped := chunking.GroupByDoc(elements)
	parents := chunking.BuildParents(grouped)
	children := chunking.BuildChildren(parents)

	if err := chunking.WriteParents(parents, artifactPath(c.cfg, job, parentChunksFile)); err != nil {
		return services.Wrap(services.ErrTransient, "chunking", "write parent chunks", "", err)
	}
	if err := chunking.WriteChildren(children, artifactPath(c.cfg, job, childChunksFile)); err != nil {
		return services.Wrap(services.ErrTransient, "chunking", "write child chunks", "", err)
	}

	job.ProgressPercent = 100
	job.ProgressMessage = fmt.Sprintf("Chunked %d elements into %d parents, %d children",
		len(elements), len(parents), len(children))
	logger.Info("chunking complete",
		logging.Int("elements", len(elements)),
		logging.Int("parents", len(parents)),
		logging.Int("children", len(children)),
	)
	return nil
}

func (c *Chunker) HealthCheck(ctx context.Context) stage.Health {
	if err := c.cfg.EnsureDirectories(); err != nil {
		return stage.Unhealthy("chunker", err.Error())
	}
	return stage.Healthy("chunker")
}
