package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"clausecheck/internal/config"
	"clausecheck/internal/daemon"
	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
	"clausecheck/internal/workflow"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := queue.Open(cfg)
	if err != nil {
		logger.Error("open queue store", logging.Error(err))
		log.Fatalf("open queue store: %v", err)
	}

	if reset, err := store.ResetStuckProcessing(ctx); err != nil {
		logger.Warn("reset stuck jobs", logging.Error(err))
	} else if reset > 0 {
		logger.Info("reset stuck jobs from previous run", logging.Int64("count", reset))
	}

	workflowManager := workflow.NewManager(cfg, store, logger)
	registerStages(workflowManager, cfg, store, logger)

	d, err := daemon.New(cfg, store, logger, workflowManager)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		log.Fatalf("create daemon: %v", err)
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start", logging.Error(err))
		log.Fatalf("daemon start: %v", err)
	}

	<-ctx.Done()
	logger.Info("clausecheckd shutting down")
}
