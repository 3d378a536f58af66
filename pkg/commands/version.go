package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Stamped at release time via -ldflags -X on tableflip.dev/shifthope/pkg/commands.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	shortened := false
	output := "yaml"
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print the shifthope build version",
		Example: `
shifthope version
shifthope version --short
`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Print(goversion.FuncWithOutput(shortened, version, commit, date, output))
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "print just the version number")
	cmd.Flags().StringVarP(&output, "output", "o", output, "output format, 'yaml' or 'json'")

	topLevel.AddCommand(cmd)
}
