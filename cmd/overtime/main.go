package main

import (
	"fmt"
	"os"

	"overtime-tracker/internal/config"
	"overtime-tracker/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     *config.Config
	log     *logrus.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "overtime",
		Short: "Overtime tracker",
		Long:  "Record daily clock-out times and track monthly overtime against a target average",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.EnvFile = envFile
			cfg = config.GetConfig()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			var err error
			log, err = logger.Setup(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with settings")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(botCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
