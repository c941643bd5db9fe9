package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/askiada/go-textpipe/pkg/pipeline"
)

var operationUsages = []struct {
	syntax      string
	description string
}{
	{pipeline.RemovePunctuationName + " (punct)", "remove every ASCII punctuation character"},
	{pipeline.TrimSpacesName + " (trim)", "collapse whitespace runs into one space, trim both ends"},
	{pipeline.LowercaseName + " (lower)", "map the text to lowercase"},
	{pipeline.NGramsName + ":N[:SEP]", "replace the text by its N-word n-grams joined with SEP (default: a space)"},
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wrt := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, usage := range operationUsages {
				_, err := fmt.Fprintf(wrt, "%s\t%s\n", usage.syntax, usage.description)
				if err != nil {
					return err
				}
			}

			return wrt.Flush()
		},
	}
}
