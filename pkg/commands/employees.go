package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/runner/employees"
)

func addEmployees(topLevel *cobra.Command) {
	selectName := false

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "list the sheet's roster",
		Example: `
shifthope employees
shifthope employees --select
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := loadStore()
			if err != nil {
				return err
			}
			s := employees.Employees{
				Persistence: p,
				Client:      loadClient(cfg, p),
				Select:      selectName,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&selectName, "select", false,
		"Pick a name interactively and store it as the submitter.")

	topLevel.AddCommand(cmd)
}
