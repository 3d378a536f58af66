package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/shifthope/pkg/remote"
	"tableflip.dev/shifthope/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "shifthope",
		Short: base.Wrap80("Fill in and submit monthly shift availability from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addDay(topLevel)
	addAllDay(topLevel)
	addNotes(topLevel)
	addClear(topLevel)
	addCopy(topLevel)
	addNav(topLevel)
	addReview(topLevel)
	addSubmit(topLevel)
	addPull(topLevel)
	addEmployees(topLevel)
	addConfig(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// loadStore resolves config and opens the db; every command starts here.
func loadStore() (store.Config, store.Persistence, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

func loadClient(cfg store.Config, p store.Persistence) *remote.Client {
	return remote.New(store.Endpoint(cfg, p))
}
