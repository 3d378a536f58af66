package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shifthope/pkg/runner/notes"
)

func addNotes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notes [text]",
		Short: "show or replace the month note",
		Long: `Without arguments the current month note is printed. With arguments
the note is replaced; an empty string clears it.`,
		Example: `
shifthope notes
shifthope notes "no early shifts the first week"
shifthope notes ""
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, p, err := loadStore()
			if err != nil {
				return err
			}
			s := notes.Notes{
				Persistence: p,
				Text:        strings.Join(args, " "),
				Replace:     len(args) > 0,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
