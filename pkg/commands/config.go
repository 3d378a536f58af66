package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/runner/config"
)

func addConfig(topLevel *cobra.Command) {
	endpoint := ""
	employee := ""

	cmd := &cobra.Command{
		Use:   "config",
		Short: "show the effective configuration",
		Long: `Prints the db path, endpoint, submitter name and displayed month.
--endpoint stores an endpoint override in the db; an empty value removes
the override so the config file wins again. --employee replaces the stored
submitter name without going through the roster.`,
		Example: `
shifthope config
shifthope config --endpoint https://example.com/sheet
shifthope config --endpoint ""
shifthope config --employee "佐藤"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := loadStore()
			if err != nil {
				return err
			}
			s := config.Config{
				Persistence: p,
				Cfg:         cfg,
				Endpoint:    endpoint,
				SetEndpoint: cmd.Flags().Changed("endpoint"),
				Employee:    employee,
				SetEmployee: cmd.Flags().Changed("employee"),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "",
		"Store an endpoint override in the db.")
	cmd.Flags().StringVar(&employee, "employee", "",
		"Store the submitter name.")

	topLevel.AddCommand(cmd)
}
