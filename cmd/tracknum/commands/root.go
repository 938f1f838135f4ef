package commands

import (
	"github.com/spf13/cobra"

	"tracknum/internal/app"
)

var (
	dataDir   string
	logLevel  string
	logFormat string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "tracknum",
		Short:         "Classify and validate shipment tracking numbers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			// Flags override the environment.
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "courier spec directory (default: embedded set)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default info)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(findCmd(), possibleCmd(), debugCmd(), couriersCmd())
	return root.Execute()
}
