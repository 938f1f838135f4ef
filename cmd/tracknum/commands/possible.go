package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// possible <number>: print every matching format, valid or not.
func possibleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "possible <number>",
		Short: "List every courier format that matches, including invalid ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := appCtx.Catalog.Possible(args[0])
			if len(matches) == 0 {
				return fmt.Errorf("no courier format matches %q", args[0])
			}

			results := make([]result, 0, len(matches))
			for _, tn := range matches {
				results = append(results, newResult(tn))
			}
			return printJSON(cmd, results)
		},
	}
}
