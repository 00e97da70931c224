package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clausecheck/internal/chunking"
)

func newChunkCommand(ctx *commandContext) *cobra.Command {
	var elementsPath string
	var parentOutput string
	var childOutput string

	cmd := &cobra.Command{
		Use:         "chunk",
		Short:       "Group document elements and build parent and child chunks",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := chunking.LoadElements(elementsPath)
			if err != nil {
				return err
			}

			grouped := chunking.GroupByDoc(elements)
			parents := chunking.BuildParents(grouped)
			children := chunking.BuildChildren(parents)

			if parentOutput != "" {
				if err := chunking.WriteParents(parents, parentOutput); err != nil {
					return err
				}
			}
			if err := chunking.WriteChildren(children, childOutput); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Chunked %d elements into %d parents, %d children\n",
				len(elements), len(parents), len(children))
			return nil
		},
	}

	cmd.Flags().StringVar(&elementsPath, "elements", "", "Path to the elements JSON file")
	cmd.Flags().StringVar(&parentOutput, "parent-output", "", "Optional path for the parent chunks JSON")
	cmd.Flags().StringVar(&childOutput, "child-output", "", "Path for the child chunks JSON")
	_ = cmd.MarkFlagRequired("elements")
	_ = cmd.MarkFlagRequired("child-output")
	return cmd
}
