package options

import (
	"github.com/spf13/cobra"
)

// CopyOptions captures how a source day's availability is propagated.
type CopyOptions struct {
	Dates   []int
	Weekday bool
}

// AddCopyArgs wires the copy target flags on the provided command.
func AddCopyArgs(cmd *cobra.Command, o *CopyOptions) {
	cmd.Flags().IntSliceVarP(&o.Dates, "dates", "d", nil,
		"Target day numbers in the current month.")
	cmd.Flags().BoolVarP(&o.Weekday, "weekday", "w", false,
		"Copy to every other same weekday in the month.")
}
