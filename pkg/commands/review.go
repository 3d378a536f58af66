package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/commands/options"
	"tableflip.dev/shifthope/pkg/runner/review"
)

func addReview(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "review",
		Short: "list the month's filled-in days",
		Example: `
shifthope review
shifthope review --axis
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := loadStore()
			if err != nil {
				return err
			}
			s := review.Review{
				Persistence: p,
				Client:      loadClient(cfg, p),
				Fallback:    cfg.Employee(),
				Axis:        do.Axis,
			}
			return s.Do(context.Background())
		},
	}

	options.AddAxisArg(cmd, do)

	topLevel.AddCommand(cmd)
}
