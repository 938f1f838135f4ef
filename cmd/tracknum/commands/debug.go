package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// debug <number>: walk every definition and show how each match validates,
// including the expected check digit when a checksum fails.
func debugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <number>",
		Short: "Show every matching definition and why it passes or fails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := args[0]
			found := false

			for _, def := range appCtx.Catalog.Definitions() {
				tn := def.Test(number)
				if tn == nil {
					continue
				}
				found = true

				courier := def.Courier()
				appCtx.Log.Info().
					Str("courier", courier.Code).
					Str("product", def.Product().Name).
					Bool("valid", tn.Valid()).
					Msg("definition matched")
				if err := printJSON(cmd, newResult(tn)); err != nil {
					return err
				}

				for _, verr := range tn.ValidationErrors {
					if verr.Kind != "checksum" || def.Checksum() == nil || len(tn.SerialNumber) == 0 {
						continue
					}
					expected, err := def.Checksum().CheckDigit(tn.SerialNumber)
					if err != nil {
						appCtx.Log.Warn().Err(err).Msg("check digit not computable")
						continue
					}
					appCtx.Log.Info().
						Str("expected_check_digit", expected).
						Str("serial_number", tn.SerialNumber.String()).
						Msg("checksum mismatch")
				}
			}

			if !found {
				return fmt.Errorf("no matching courier definition found for %q", number)
			}
			return nil
		},
	}
}
