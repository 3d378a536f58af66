// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DayOptions captures the availability flags for editing a single date.
type DayOptions struct {
	AllDay bool
	Start1 string
	End1   string
	Start2 string
	End2   string
	Notes  string
}

// AddDayArgs wires the per-day availability flags on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false,
		"Mark the whole day available.")
	cmd.Flags().StringVar(&o.Start1, "from", "",
		"First window start, hour:minute.")
	cmd.Flags().StringVar(&o.End1, "to", "",
		"First window end, hour:minute.")
	cmd.Flags().StringVar(&o.Start2, "from2", "",
		"Second window start, hour:minute.")
	cmd.Flags().StringVar(&o.End2, "to2", "",
		"Second window end, hour:minute.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-text note for the day.")
}
