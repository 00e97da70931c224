package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clausecheck/internal/chunking"
	"clausecheck/internal/requirements"
	"clausecheck/internal/retrieval"
)

func newRetrieveCommand(ctx *commandContext) *cobra.Command {
	var childChunksPath string
	var requirementsPath string
	var outputPath string
	var topK int

	cmd := &cobra.Command{
		Use:         "retrieve",
		Short:       "Rank child chunks against clause locator patterns",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := requirements.Load(requirementsPath)
			if err != nil {
				return err
			}
			patterns, err := requirements.CompilePatterns(reqs)
			if err != nil {
				return err
			}
			children, err := chunking.LoadChildren(childChunksPath)
			if err != nil {
				return err
			}

			candidates := retrieval.SelectCandidates(children, patterns, topK)
			if err := candidates.Write(outputPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Retrieved candidates for %d clauses from %d chunks\n",
				len(reqs.Clauses), len(children))
			return nil
		},
	}

	cmd.Flags().StringVar(&childChunksPath, "child-chunks", "", "Path to the child chunks JSON")
	cmd.Flags().StringVar(&requirementsPath, "requirements", "", "Path to the clause requirements JSON")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path for the candidates JSON")
	cmd.Flags().IntVar(&topK, "top-k", retrieval.DefaultTopK, "Maximum candidates retained per clause")
	_ = cmd.MarkFlagRequired("child-chunks")
	_ = cmd.MarkFlagRequired("requirements")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
