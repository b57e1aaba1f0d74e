package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexshd/bigo/internal/workload"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in workloads and their expected classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tEXPECTED\tRANGE\tDESCRIPTION")
			for _, w := range workload.All() {
				fmt.Fprintf(tw, "%s\t%s\t%d-%d\t%s\n",
					w.Name, w.Expected, w.MinN, w.MaxN, w.Description)
			}
			return tw.Flush()
		},
	}
}
