package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear [date]",
		Short: "clear one day, or the whole month",
		Long: `With a date, removes that day's availability. Without one, wipes every
day of the current month along with the month note.`,
		Example: `
shifthope clear 15
shifthope clear
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, p, err := loadStore()
			if err != nil {
				return err
			}
			s := clear.Clear{Persistence: p}
			if len(args) == 1 {
				s.Date = args[0]
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
