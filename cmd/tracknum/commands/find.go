package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// find <number>: print the first courier format that matches and validates.
func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <number>",
		Short: "Find the first courier format that matches and validates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tn := appCtx.Catalog.Find(args[0])
			if tn == nil {
				return fmt.Errorf("no valid tracking number detected for %q", args[0])
			}
			return printJSON(cmd, newResult(tn))
		},
	}
}
