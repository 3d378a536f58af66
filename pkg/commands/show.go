package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/commands/options"
	"tableflip.dev/shifthope/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "show the month's availability calendar",
		Example: `
shifthope show
shifthope show --summaries
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, p, err := loadStore()
			if err != nil {
				return err
			}
			s := show.Show{
				Persistence: p,
				Summaries:   do.Summaries,
			}
			return s.Do(context.Background())
		},
	}

	options.AddSummariesArg(cmd, do)

	topLevel.AddCommand(cmd)
}
