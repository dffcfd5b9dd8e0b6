package cmd

import (
	"fmt"
	"text/tabwriter"

	"keyaudit/feature/source"

	"github.com/spf13/cobra"
)

// catalogueCmd lists the source access patterns in match order.
var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "List the source code patterns recognized as key usages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPREFIX")
		for _, p := range source.DefaultCatalogue().Patterns() {
			fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Prefix)
		}
		return tw.Flush()
	},
}

func init() {
	RootCmd.AddCommand(catalogueCmd)
}
