package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clausecheck/internal/judge"
)

func newJudgeCommand(ctx *commandContext) *cobra.Command {
	var resultsPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:         "judge",
		Short:       "Reconcile clause verdicts against their evidence",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := judge.Load(resultsPath)
			if err != nil {
				return err
			}

			judged := judge.Reconcile(results)
			if err := judged.Write(outputPath); err != nil {
				return err
			}

			revised := 0
			for _, result := range judged {
				if result.JudgeStatus != result.Status {
					revised++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Judged %d clauses: %d verdicts revised\n", len(judged), revised)
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsPath, "results", "", "Path to the clause results JSON")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path for the judged results JSON")
	_ = cmd.MarkFlagRequired("results")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
