package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clausecheck/internal/chunking"
	"clausecheck/internal/rules"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var elementsPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:         "check",
		Short:       "Run the deterministic purchase-order checks over a document",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := chunking.LoadElements(elementsPath)
			if err != nil {
				return err
			}
			texts := make([]string, 0, len(elements))
			for _, element := range elements {
				texts = append(texts, element.Text)
			}

			results := rules.Run(strings.Join(texts, "\n"))
			if err := results.Write(outputPath); err != nil {
				return err
			}

			passed := 0
			for _, result := range results {
				if result.Status == rules.StatusPass {
					passed++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ran %d checks: %d passed\n", len(results), passed)
			return nil
		},
	}

	cmd.Flags().StringVar(&elementsPath, "elements", "", "Path to the elements JSON file")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path for the check results JSON")
	_ = cmd.MarkFlagRequired("elements")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
