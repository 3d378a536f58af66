// Package day edits a single date's availability.
package day

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shifthope/pkg/clock"
	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

// Set writes one day's availability: either AllDay, or up to two time
// windows, optionally with a note. Empty bound strings leave that side of the
// window open.
type Set struct {
	Persistence store.Persistence

	Date string

	AllDay bool
	Start1 string
	End1   string
	Start2 string
	End2   string

	Notes    string
	HasNotes bool
}

func (s *Set) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("day: no persistence")
	}

	svc := state.New(s.Persistence)
	st := svc.State()

	key, err := schedule.ResolveDay(st.Year, st.Month, s.Date)
	if err != nil {
		return err
	}

	e := svc.Entry(key)
	if e == nil {
		e = &schedule.Entry{}
	}

	if s.AllDay {
		e.SetAllDay()
	} else if s.Start1 != "" || s.End1 != "" || s.Start2 != "" || s.End2 != "" {
		slot1, err := parseSlot(s.Start1, s.End1)
		if err != nil {
			return err
		}
		slot2, err := parseSlot(s.Start2, s.End2)
		if err != nil {
			return err
		}
		e.SetSlots(slot1, slot2)
	}
	if s.HasNotes {
		e.SetNotes(s.Notes)
	}

	svc.SaveDay(key, e)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(key, svc.Entry(key))
	pp.NewLine()
	return nil
}

func parseSlot(start, end string) (*schedule.Slot, error) {
	from, err := parseBound(start)
	if err != nil {
		return nil, err
	}
	to, err := parseBound(end)
	if err != nil {
		return nil, err
	}
	return schedule.NewSlot(from, to), nil
}

func parseBound(text string) (clock.TimeOfDay, error) {
	t, err := clock.Parse(clock.NormalizeWidth(text))
	if err != nil {
		return clock.Unspecified, fmt.Errorf("day: %q: %w", text, err)
	}
	return t, nil
}
