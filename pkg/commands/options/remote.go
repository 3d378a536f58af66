package options

import (
	"github.com/spf13/cobra"
)

// RemoteOptions identifies who the remote operation acts for.
type RemoteOptions struct {
	Employee string
}

// AddEmployeeArg wires the employee-name flag on the provided command.
func AddEmployeeArg(cmd *cobra.Command, o *RemoteOptions) {
	cmd.Flags().StringVarP(&o.Employee, "employee", "e", "",
		"Employee name to act as; defaults to the stored name.")
}

// DisplayOptions toggles richer render modes.
type DisplayOptions struct {
	Summaries bool
	Axis      bool
}

// AddSummariesArg wires the calendar summary flag.
func AddSummariesArg(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVarP(&o.Summaries, "summaries", "s", false,
		"Show each day's first availability line in the grid.")
}

// AddAxisArg wires the review axis-bar flag.
func AddAxisArg(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVar(&o.Axis, "axis", false,
		"Draw each window's position on the 7:00-23:00 axis.")
}
