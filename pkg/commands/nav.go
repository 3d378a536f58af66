package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/runner/nav"
)

func addNav(topLevel *cobra.Command) {
	next := &cobra.Command{
		Use:   "next",
		Short: "move to the next month",
		Example: `
shifthope next
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return navigate(1)
		},
	}

	prev := &cobra.Command{
		Use:     "prev",
		Aliases: []string{"previous"},
		Short:   "move to the previous month",
		Example: `
shifthope prev
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return navigate(-1)
		},
	}

	topLevel.AddCommand(next)
	topLevel.AddCommand(prev)
}

func navigate(delta int) error {
	_, p, err := loadStore()
	if err != nil {
		return err
	}
	s := nav.Nav{Persistence: p, Delta: delta}
	return s.Do(context.Background())
}
