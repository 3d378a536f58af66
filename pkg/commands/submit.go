package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/commands/options"
	"tableflip.dev/shifthope/pkg/runner/pull"
	"tableflip.dev/shifthope/pkg/runner/submit"
)

func addSubmit(topLevel *cobra.Command) {
	ro := &options.RemoteOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "submit the month to the sheet",
		Long: `Marks the month submitted and posts it to the configured endpoint. With
no endpoint the mark is local only; a failed post keeps the local mark and
reports the error.`,
		Example: `
shifthope submit
shifthope submit --employee "佐藤"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := loadStore()
			if err != nil {
				return err
			}
			s := submit.Submit{
				Persistence: p,
				Client:      loadClient(cfg, p),
				Employee:    ro.Employee,
				Fallback:    cfg.Employee(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddEmployeeArg(cmd, ro)

	topLevel.AddCommand(cmd)
}

func addPull(topLevel *cobra.Command) {
	ro := &options.RemoteOptions{}

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "replace local state with the sheet's copy",
		Example: `
shifthope pull
shifthope pull --employee "佐藤"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := loadStore()
			if err != nil {
				return err
			}
			s := pull.Pull{
				Persistence: p,
				Client:      loadClient(cfg, p),
				Employee:    ro.Employee,
				Fallback:    cfg.Employee(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddEmployeeArg(cmd, ro)

	topLevel.AddCommand(cmd)
}
