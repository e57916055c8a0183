package main

import (
	"fmt"
	"time"

	"overtime-tracker/internal/service"

	"github.com/spf13/cobra"
)

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage the production calendar",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Import a yearly production calendar (JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			parsed, err := a.nonWorkingDayService.LoadFromJSON(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, parsed.Summary())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <YYYY-MM-DD>",
		Short: "Tell whether a date is a workday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			status, err := a.nonWorkingDayService.CheckDay(args[0])
			if err != nil {
				return err
			}

			kind := "day off"
			if status.IsWorkday {
				kind = "workday"
			}
			source := "production calendar"
			if !status.YearLoaded {
				source = "Mon-Fri rule"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", status.Date, kind, source)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list [YYYY-MM]",
		Short: "List imported calendar years, or the days off of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()

			years, err := a.nonWorkingDayService.ListYears()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, service.FormatCalendarYears(years))

			if len(args) == 0 {
				return nil
			}

			month, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
			}
			days, err := a.nonWorkingDayService.ListForMonth(month.Year(), int(month.Month()))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, service.FormatDaysOff(month.Year(), int(month.Month()), days))
			return nil
		},
	})

	return cmd
}
