package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// couriers: list the loaded couriers and their products.
func couriersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "couriers",
		Short: "List loaded couriers and their tracking-number formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range appCtx.Catalog.Definitions() {
				courier := def.Courier()
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-32s %s\n", courier.Code, courier.Name, def.Product().Name)
			}
			return nil
		},
	}
}
