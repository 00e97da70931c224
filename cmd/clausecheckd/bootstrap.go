package main

import (
	"log/slog"

	"clausecheck/internal/config"
	"clausecheck/internal/queue"
	"clausecheck/internal/stages"
	"clausecheck/internal/workflow"
)

func registerStages(manager *workflow.Manager, cfg *config.Config, store *queue.Store, logger *slog.Logger) {
	if manager == nil || cfg == nil {
		return
	}

	manager.ConfigureStages(workflow.StageSet{
		Chunker:   stages.NewChunker(cfg, store, logger),
		Retriever: stages.NewRetriever(cfg, store, logger),
		Checker:   stages.NewChecker(cfg, store, logger),
		Judge:     stages.NewJudge(cfg, store, logger),
		Reporter:  stages.NewReporter(cfg, store, logger),
	})
}
