package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the current month projection",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			if history {
				months, err := a.statsService.History()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, a.statsService.FormatHistory(months))
				return nil
			}

			stats, err := a.statsService.CurrentMonthProjection()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, a.statsService.FormatProjection(stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "print every month instead")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the overtime history to an Excel workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			buf, filename, err := a.exportService.ExportHistory()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				filename = args[0]
			}

			if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", filename, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "📝 Exported to %s\n", filename)
			return nil
		},
	}
}
