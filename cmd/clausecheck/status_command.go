package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"clausecheck/internal/api"
	"clausecheck/internal/config"
	"clausecheck/internal/preflight"
	"clausecheck/internal/queue"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pipeline readiness and queue summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				checks := preflight.RunAll(cmd.Context(), cfg)
				summary, err := store.Health(cmd.Context())
				if err != nil {
					return err
				}

				if jsonOut {
					type statusPayload struct {
						Checks []preflight.Result `json:"checks"`
						Queue  api.QueueCounts    `json:"queue"`
					}
					return writeJSON(cmd, statusPayload{
						Checks: checks,
						Queue:  api.FromHealthSummary(summary),
					})
				}

				out := cmd.OutOrStdout()
				if isTerminal() {
					rows := make([][]string, 0, len(checks))
					for _, check := range checks {
						rows = append(rows, []string{check.Name, passFail(check.Passed), check.Detail})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"Check", "Status", "Detail"},
						rows,
						[]columnAlignment{alignLeft, alignLeft, alignLeft},
					))
					fmt.Fprintln(out, renderTable(
						[]string{"Bucket", "Count"},
						[][]string{
							{"Total", strconv.Itoa(summary.Total)},
							{"Pending", strconv.Itoa(summary.Pending)},
							{"Processing", strconv.Itoa(summary.Processing)},
							{"Failed", strconv.Itoa(summary.Failed)},
							{"Review", strconv.Itoa(summary.Review)},
							{"Completed", strconv.Itoa(summary.Completed)},
						},
						[]columnAlignment{alignLeft, alignRight},
					))
					return nil
				}

				for _, check := range checks {
					fmt.Fprintf(out, "%s: %s (%s)\n", check.Name, passFail(check.Passed), check.Detail)
				}
				fmt.Fprintf(out, "queue: total=%d pending=%d processing=%d failed=%d review=%d completed=%d\n",
					summary.Total, summary.Pending, summary.Processing,
					summary.Failed, summary.Review, summary.Completed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func passFail(passed bool) string {
	if passed {
		return "ok"
	}
	return "failed"
}
