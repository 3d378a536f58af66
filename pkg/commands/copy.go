package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/commands/options"
	"tableflip.dev/shifthope/pkg/runner/copy"
)

func addCopy(topLevel *cobra.Command) {
	co := &options.CopyOptions{}

	cmd := &cobra.Command{
		Use:   "copy [date]",
		Short: "copy a day's availability onto other days",
		Long: `Duplicates the source date's windows, all-day mark and note onto the
targets, overwriting them. Targets are explicit day numbers, or with
--weekday every other day in the month that shares the source's weekday.
With neither flag the targets are prompted for.`,
		Example: `
shifthope copy 3 --dates 10,17,24
shifthope copy 3 --weekday
shifthope copy 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, p, err := loadStore()
			if err != nil {
				return err
			}
			s := copy.Copy{
				Persistence: p,
				Source:      args[0],
				Dates:       co.Dates,
				Weekday:     co.Weekday,
			}
			return s.Do(context.Background())
		},
	}

	options.AddCopyArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
