// Package review lists the month's filled-in days before submission.
package review

import (
	"context"
	"errors"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/remote"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

type Review struct {
	Persistence store.Persistence

	// Client, when configured, refreshes the month from the sheet before
	// listing. A failed refresh reviews the local copy.
	Client *remote.Client

	// Fallback is the config file identity, used when nothing is stored.
	Fallback string

	// Axis adds a 7:00-23:00 position bar under each timed day.
	Axis bool
}

func (r *Review) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("review: no persistence")
	}

	svc := state.New(r.Persistence)
	st := svc.State()

	name := st.EmployeeName
	if name == "" {
		name = r.Fallback
	}
	if r.Client != nil && r.Client.Configured() && name != "" {
		if sub, err := r.Client.Fetch(ctx, name, st.Year, st.Month); err == nil && len(sub.Days) > 0 {
			svc.ReplaceMonth(sub.MonthNotes, sub.Days)
			st = svc.State()
		}
	}
	keys := svc.SortedKeys()

	pp := printers.PrettyPrint{ShowAxis: r.Axis}
	pp.NewLine()
	if r.Axis {
		pp.MonthTitle(st.Year, st.Month, len(keys))
		pp.NewLine()
		for _, k := range keys {
			pp.Day(k, st.Days[k])
		}
		pp.NewLine()
		if st.Submitted {
			pp.Notice("submitted")
		} else {
			pp.Notice("not submitted")
		}
		return nil
	}

	pp.Review(st, keys)
	return nil
}
