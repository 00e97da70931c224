package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clausecheck/internal/judge"
	"clausecheck/internal/report"
	"clausecheck/internal/rules"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var resultsPath string
	var checksPath string
	var outputPath string
	var issuesJSON string
	var issuesCSV string

	cmd := &cobra.Command{
		Use:         "report",
		Short:       "Render the review report and issue exports",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			judged, err := judge.Load(resultsPath)
			if err != nil {
				return err
			}

			var checks rules.ResultMap
			if strings.TrimSpace(checksPath) != "" {
				checks, err = rules.Load(checksPath)
				if err != nil {
					return err
				}
			}

			issues := report.BuildIssueRegister(judged)
			rendered := report.Render(judged, checks)
			if err := report.WriteReport(rendered, outputPath); err != nil {
				return err
			}
			if issuesJSON != "" {
				if err := report.WriteIssuesJSON(issues, issuesJSON); err != nil {
					return err
				}
			}
			if issuesCSV != "" {
				if err := report.WriteIssuesCSV(issues, issuesCSV); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d issues)\n", outputPath, len(issues))
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsPath, "results", "", "Path to the judged clause results JSON")
	cmd.Flags().StringVar(&checksPath, "deterministic", "", "Optional path to the deterministic check results JSON")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path for the rendered report")
	cmd.Flags().StringVar(&issuesJSON, "issues-json", "", "Optional path for the issue register JSON")
	cmd.Flags().StringVar(&issuesCSV, "issues-csv", "", "Optional path for the issue register CSV")
	_ = cmd.MarkFlagRequired("results")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
