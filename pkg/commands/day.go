package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/commands/options"
	"tableflip.dev/shifthope/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "set one day's availability",
		Long: `Set a date's availability: up to two hour:minute windows, an all-day
mark, or a note. The date is a day number in the current month or a full
year-month-day key.`,
		Example: `
shifthope day 15 --from 9:00 --to 12:00
shifthope day 15 --from 14:00
shifthope day 2025-03-15 --all-day --notes "prefer mornings"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, p, err := loadStore()
			if err != nil {
				return err
			}
			s := day.Set{
				Persistence: p,
				Date:        args[0],
				AllDay:      do.AllDay,
				Start1:      do.Start1,
				End1:        do.End1,
				Start2:      do.Start2,
				End2:        do.End2,
				Notes:       do.Notes,
				HasNotes:    cmd.Flags().Changed("notes"),
			}
			return s.Do(context.Background())
		},
	}

	options.AddDayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func addAllDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "allday [date...]",
		Short: "mark days available all day",
		Example: `
shifthope allday 15
shifthope allday 15 16 17
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, p, err := loadStore()
			if err != nil {
				return err
			}
			for _, date := range args {
				s := day.Set{
					Persistence: p,
					Date:        date,
					AllDay:      true,
				}
				if err := s.Do(context.Background()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
