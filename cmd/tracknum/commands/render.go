package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tracknum/internal/domain"
)

// result is the JSON shape the query commands print: the raw tracking
// number plus its derived views.
type result struct {
	*domain.TrackingNumber
	Valid       bool        `json:"valid"`
	CourierInfo domain.Info `json:"courier_info"`
	ServiceType domain.Info `json:"service_type"`
}

func newResult(tn *domain.TrackingNumber) result {
	return result{
		TrackingNumber: tn,
		Valid:          tn.Valid(),
		CourierInfo:    tn.CourierInfo(),
		ServiceType:    tn.ServiceType(),
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
