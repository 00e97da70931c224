package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"clausecheck/internal/config"
	"clausecheck/internal/queue"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>",
		Short: "Add an elements JSON document to the review queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			info, err := os.Stat(absPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file does not exist: %s", absPath)
				}
				return fmt.Errorf("inspect file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", absPath)
			}
			if !strings.EqualFold(filepath.Ext(absPath), ".json") {
				return fmt.Errorf("unsupported file extension %q", filepath.Ext(absPath))
			}

			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				job, err := store.NewJob(cmd.Context(), absPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queued document as job #%d (%s)\n", job.ID, filepath.Base(absPath))
				return nil
			})
		},
	}
}
