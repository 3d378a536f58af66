// Package copy propagates one day's availability onto other days.
package copy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/shifthope/pkg/printers"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

// Copy duplicates the Source day's entry. With Weekday set every other same
// weekday in the month is overwritten; otherwise the listed Dates are, with
// an interactive prompt when neither is given.
type Copy struct {
	Persistence store.Persistence

	Source  string
	Dates   []int
	Weekday bool
}

func (c *Copy) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("copy: no persistence")
	}

	svc := state.New(c.Persistence)
	st := svc.State()

	source, err := schedule.ResolveDay(st.Year, st.Month, c.Source)
	if err != nil {
		return err
	}

	if !c.Weekday && len(c.Dates) == 0 {
		c.Dates, err = promptDates(st.Year, st.Month)
		if err != nil {
			return err
		}
	}

	var count int
	if c.Weekday {
		count, err = svc.CopyToWeekday(source)
	} else {
		count, err = svc.CopyToDates(source, c.Dates)
	}
	if err != nil {
		if errors.Is(err, state.ErrNoSourceEntry) {
			return fmt.Errorf("copy: %s has nothing to copy", source)
		}
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	switch count {
	case 1:
		pp.Notice(fmt.Sprintf("copied %s to 1 day", source))
	default:
		pp.Notice(fmt.Sprintf("copied %s to %d days", source, count))
	}
	return nil
}

// promptDates asks for a comma separated day list, e.g. "10, 17, 24".
func promptDates(year int, month time.Month) ([]int, error) {
	last := schedule.DaysIn(year, month)

	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Copy to days of %s (comma separated)", month),
		Validate: func(input string) error {
			_, err := parseDates(input, last)
			return err
		},
	}
	input, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("copy: %w", err)
	}
	return parseDates(input, last)
}

func parseDates(input string, last int) ([]int, error) {
	fields := strings.Split(input, ",")
	var dates []int
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not a day number: %q", f)
		}
		if n < 1 || n > last {
			return nil, fmt.Errorf("day %d is out of range", n)
		}
		dates = append(dates, n)
	}
	if len(dates) == 0 {
		return nil, errors.New("no days given")
	}
	return dates, nil
}
