// Package show renders the current month's availability calendar.
package show

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
	"tableflip.dev/shifthope/pkg/ui/calendar"
)

type Show struct {
	Persistence store.Persistence

	// Summaries adds each day's first availability line under the grid cell.
	Summaries bool
}

func (s *Show) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("show: no persistence")
	}

	svc := state.New(s.Persistence)
	st := svc.State()
	today := schedule.KeyFor(time.Now())

	info := map[schedule.DateKey]calendar.DayInfo{}
	for k, e := range st.Days {
		lines := e.SummaryLines()
		d := calendar.DayInfo{HasEntry: e.HasTimeContent()}
		if len(lines) > 0 {
			d.Summary = lines[0]
		}
		info[k] = d
	}
	if today.SameMonth(st.Year, st.Month) {
		d := info[today]
		d.IsToday = true
		info[today] = d
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Month(st.Year, st.Month, info, s.Summaries)
	if st.MonthNotes != "" {
		pp.Notice("notes: " + st.MonthNotes)
	}
	if st.Submitted {
		pp.Notice("submitted")
	}
	return nil
}
